package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends
const (
	StorageFiles  = "files"
	StorageSQLite = "sqlite"
)

// Restore modes for the startup hook
const (
	RestoreAuto   = "auto"
	RestoreOff    = "off"
	RestorePrompt = "prompt"
)

// Defaults applied when neither flags, env vars nor settings.json say otherwise
const (
	DefaultMaxLogFiles = 1000
	DefaultRestore     = RestorePrompt
	DefaultStorage     = StorageFiles
)

// Settings represents the structure of ~/.workset/settings.json
type Settings struct {
	Debug             *bool       `json:"debug,omitempty"`
	Editor            string      `json:"editor,omitempty"`
	MaxLogFiles       *int        `json:"max_log_files,omitempty"`
	OpenInEditor      *bool       `json:"open_in_editor,omitempty"`
	Restore           string      `json:"restore,omitempty"`
	SaveOnExit        *bool       `json:"save_on_exit,omitempty"`
	SearchPathExclude StringArray `json:"search_path_exclude,omitempty"`
	Storage           string      `json:"storage,omitempty"`
}

// envOverrides holds WORKSET_* environment variables that override settings.json.
// Keys come from field names (split_words) so unprefixed variables like $EDITOR are never read.
type envOverrides struct {
	Editor            string
	OpenInEditor      *bool `split_words:"true"`
	Restore           string
	SaveOnExit        *bool    `split_words:"true"`
	SearchPathExclude []string `split_words:"true"`
	Storage           string
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// DefaultSettings returns the settings written by `workset init`
func DefaultSettings() *Settings {
	saveOnExit := true
	return &Settings{
		Restore:    DefaultRestore,
		SaveOnExit: &saveOnExit,
		Storage:    DefaultStorage,
	}
}

// LoadSettings loads settings from $WORKSET_HOME/settings.json and applies WORKSET_* overrides.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(GetSettingsPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("invalid settings.json: %w", err)
		}
	}

	if err := settings.applyEnv(); err != nil {
		return nil, err
	}

	// Expand Editor path if it starts with ~
	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Settings) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("WORKSET", &env); err != nil {
		return fmt.Errorf("invalid WORKSET_* environment: %w", err)
	}

	if env.Editor != "" {
		s.Editor = env.Editor
	}
	if env.OpenInEditor != nil {
		s.OpenInEditor = env.OpenInEditor
	}
	if env.Restore != "" {
		s.Restore = env.Restore
	}
	if env.SaveOnExit != nil {
		s.SaveOnExit = env.SaveOnExit
	}
	if len(env.SearchPathExclude) > 0 {
		s.SearchPathExclude = env.SearchPathExclude
	}
	if env.Storage != "" {
		s.Storage = env.Storage
	}
	return nil
}

// Validate checks enum-like fields
func (s *Settings) Validate() error {
	switch s.Storage {
	case "", StorageFiles, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (use %s or %s)", s.Storage, StorageFiles, StorageSQLite)
	}

	switch s.Restore {
	case "", RestoreAuto, RestoreOff, RestorePrompt:
	default:
		return fmt.Errorf("unknown restore mode %q (use %s, %s or %s)", s.Restore, RestoreOff, RestorePrompt, RestoreAuto)
	}

	return nil
}

// StorageOrDefault returns the configured storage backend
func (s *Settings) StorageOrDefault() string {
	if s.Storage == "" {
		return DefaultStorage
	}
	return s.Storage
}

// RestoreOrDefault returns the configured startup restore mode
func (s *Settings) RestoreOrDefault() string {
	if s.Restore == "" {
		return DefaultRestore
	}
	return s.Restore
}

// SaveOnExitOrDefault reports whether the shell saves when it exits
func (s *Settings) SaveOnExitOrDefault() bool {
	return s.SaveOnExit == nil || *s.SaveOnExit
}

// OpenInEditorOrDefault reports whether opened documents are also sent to the external editor
func (s *Settings) OpenInEditorOrDefault() bool {
	return s.OpenInEditor != nil && *s.OpenInEditor
}

// SaveSettings saves settings to $WORKSET_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

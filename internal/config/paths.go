package config

import (
	"os"
	"path/filepath"
)

// GetWorksetHome returns WORKSET_HOME or ~/.workset default
func GetWorksetHome() string {
	home := os.Getenv("WORKSET_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".workset"
		}
		return filepath.Join(homeDir, ".workset")
	}
	return ExpandPath(home)
}

// GetSessionsPath returns $WORKSET_HOME/sessions
func GetSessionsPath() string {
	return filepath.Join(GetWorksetHome(), "sessions")
}

// GetDBPath returns $WORKSET_HOME/workset.db
func GetDBPath() string {
	return filepath.Join(GetWorksetHome(), "workset.db")
}

// GetWorkspacePath returns $WORKSET_HOME/workspace.json
func GetWorkspacePath() string {
	return filepath.Join(GetWorksetHome(), "workspace.json")
}

// GetSettingsPath returns $WORKSET_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetWorksetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

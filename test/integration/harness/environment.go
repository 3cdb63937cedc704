package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own WORKSET_HOME.
type TestEnvironment struct {
	WorksetHome string
	extraEnv    map[string]string
	tb          testing.TB
	workDir     string
}

// NewTestEnvironment creates an isolated test environment with a temp WORKSET_HOME
// and a separate project directory to hold documents.
// Both directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		WorksetHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
		workDir:     tb.TempDir(),
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out WORKSET_* variables and sets:
//   - WORKSET_HOME to the temp directory
//   - WORKSET_DEBUG to empty string (disables debug logging)
//   - WORKSET_EDITOR to "true" (no-op command)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["WORKSET_HOME"] = true
	overrideKeys["WORKSET_DEBUG"] = true
	overrideKeys["WORKSET_EDITOR"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "WORKSET_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"WORKSET_HOME="+e.WorksetHome,
		"WORKSET_DEBUG=",
		"WORKSET_EDITOR=true",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.WorksetHome, "workset.db")
}

// SessionsPath returns the directory holding session record files.
func (e *TestEnvironment) SessionsPath() string {
	return filepath.Join(e.WorksetHome, "sessions")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.WorksetHome, "settings.json")
}

// WorkspacePath returns the path to the live workspace state.
func (e *TestEnvironment) WorkspacePath() string {
	return filepath.Join(e.WorksetHome, "workspace.json")
}

// WorkDir returns the project directory documents are created in.
func (e *TestEnvironment) WorkDir() string {
	return e.workDir
}

// CreateDocument writes a file under the project directory and returns its path.
func (e *TestEnvironment) CreateDocument(name string) string {
	e.tb.Helper()

	path := filepath.Join(e.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte("// "+name+"\n"), 0644); err != nil {
		e.tb.Fatalf("Failed to create document %s: %v", name, err)
	}
	return path
}

// CreateDir makes a directory under the project directory and returns its path.
func (e *TestEnvironment) CreateDir(name string) string {
	e.tb.Helper()

	path := filepath.Join(e.workDir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.tb.Fatalf("Failed to create directory %s: %v", name, err)
	}
	return path
}

// WriteSettings writes raw settings.json content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()

	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

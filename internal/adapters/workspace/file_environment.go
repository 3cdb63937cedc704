package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

// FileEnvironment implements ports.Environment on top of workspace.json.
// Changes stay in memory until Flush.
type FileEnvironment struct {
	editor        ports.EditorOpener
	editorCommand string
	installDir    string
	path          string
	state         workspaceState
}

// Verify interface compliance at compile time
var _ ports.Environment = (*FileEnvironment)(nil)

// NewFileEnvironment loads the workspace state stored at path.
// A nil editor disables launching documents in an external editor.
func NewFileEnvironment(path string, editor ports.EditorOpener, editorCommand string) (*FileEnvironment, error) {
	installDir := executableDir()

	env := &FileEnvironment{
		editor:        editor,
		editorCommand: editorCommand,
		installDir:    installDir,
		path:          path,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &env.state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workspace state: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		env.state = initialState(installDir)
		logging.Logger.Debug("No workspace state yet, starting fresh", "path", path)
	default:
		return nil, fmt.Errorf("failed to read workspace state: %w", err)
	}

	if env.state.Documents == nil {
		env.state.Documents = []string{}
	}
	return env, nil
}

func initialState(installDir string) workspaceState {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return workspaceState{
		Documents:        []string{},
		SearchPath:       installDir,
		WorkingDirectory: wd,
	}
}

// executableDir returns the directory of the running binary, "" if unknown
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		logging.Logger.Warn("Could not resolve executable path", "error", err)
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Path returns the workspace state file location
func (e *FileEnvironment) Path() string {
	return e.path
}

func (e *FileEnvironment) ActiveDocument() string   { return e.state.Active }
func (e *FileEnvironment) CurrentSession() string   { return e.state.Session }
func (e *FileEnvironment) Documents() []string      { return e.state.documents() }
func (e *FileEnvironment) InstallDir() string       { return e.installDir }
func (e *FileEnvironment) SearchPath() string       { return e.state.SearchPath }
func (e *FileEnvironment) WorkingDirectory() string { return e.state.WorkingDirectory }

// ChangeDirectory sets the working directory of the environment and the process
func (e *FileEnvironment) ChangeDirectory(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid directory %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot change directory to %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot change directory to %s: not a directory", abs)
	}

	if err := os.Chdir(abs); err != nil {
		return fmt.Errorf("cannot change directory to %s: %w", abs, err)
	}
	e.state.WorkingDirectory = abs
	return nil
}

func (e *FileEnvironment) CloseAllDocuments() error {
	e.state.closeAll()
	return nil
}

func (e *FileEnvironment) CloseDocument(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return e.state.close(abs)
}

func (e *FileEnvironment) FocusDocument(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return e.state.focus(abs)
}

// OpenDocument opens an existing regular file and focuses it
func (e *FileEnvironment) OpenDocument(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid document path %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", abs, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot open %s: not a regular file", abs)
	}

	e.state.open(abs)

	if e.editor != nil {
		if err := e.editor.Open(abs, e.editorCommand); err != nil {
			// The document remains open in the workspace
			logging.Logger.Warn("Failed to launch editor", "path", abs, "error", err)
		}
	}
	return nil
}

func (e *FileEnvironment) SetCurrentSession(name string) error {
	e.state.Session = name
	return nil
}

// SetSearchPath keeps the entries that are existing directories and
// reports the others in a joined error
func (e *FileEnvironment) SetSearchPath(searchPath string) error {
	var kept []string
	var errs []error
	for _, entry := range domain.SplitSearchPath(searchPath) {
		info, err := os.Stat(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("search path entry %s: %w", entry, err))
			continue
		}
		if !info.IsDir() {
			errs = append(errs, fmt.Errorf("search path entry %s: not a directory", entry))
			continue
		}
		kept = append(kept, entry)
	}

	e.state.SearchPath = domain.JoinSearchPath(kept)
	return errors.Join(errs...)
}

// Flush writes the state to disk with file locking
func (e *FileEnvironment) Flush() error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	file, err := os.OpenFile(e.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open workspace state: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	e.state.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(e.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workspace state: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write workspace state: %w", err)
	}

	logging.Logger.Debug("Workspace state flushed", "path", e.path, "session", e.state.Session, "documents", len(e.state.Documents))
	return nil
}

package workspace

import (
	"errors"
	"fmt"
	"os"

	"workset/internal/domain"
	"workset/internal/ports"
)

// MemoryEnvironment is an in-memory ports.Environment.
// Paths listed in Missing behave as if they did not exist.
type MemoryEnvironment struct {
	Flushes int
	Missing map[string]bool

	installDir string
	state      workspaceState
}

// Verify interface compliance at compile time
var _ ports.Environment = (*MemoryEnvironment)(nil)

// NewMemoryEnvironment creates an empty environment rooted at workingDirectory
func NewMemoryEnvironment(workingDirectory, installDir string) *MemoryEnvironment {
	return &MemoryEnvironment{
		Missing:    map[string]bool{},
		installDir: installDir,
		state: workspaceState{
			Documents:        []string{},
			SearchPath:       installDir,
			WorkingDirectory: workingDirectory,
		},
	}
}

func (e *MemoryEnvironment) ActiveDocument() string   { return e.state.Active }
func (e *MemoryEnvironment) CurrentSession() string   { return e.state.Session }
func (e *MemoryEnvironment) Documents() []string      { return e.state.documents() }
func (e *MemoryEnvironment) InstallDir() string       { return e.installDir }
func (e *MemoryEnvironment) SearchPath() string       { return e.state.SearchPath }
func (e *MemoryEnvironment) WorkingDirectory() string { return e.state.WorkingDirectory }

func (e *MemoryEnvironment) ChangeDirectory(dir string) error {
	if e.Missing[dir] {
		return fmt.Errorf("cannot change directory to %s: %w", dir, os.ErrNotExist)
	}
	e.state.WorkingDirectory = dir
	return nil
}

func (e *MemoryEnvironment) CloseAllDocuments() error {
	e.state.closeAll()
	return nil
}

func (e *MemoryEnvironment) CloseDocument(path string) error {
	return e.state.close(path)
}

func (e *MemoryEnvironment) FocusDocument(path string) error {
	return e.state.focus(path)
}

func (e *MemoryEnvironment) OpenDocument(path string) error {
	if e.Missing[path] {
		return fmt.Errorf("cannot open %s: %w", path, os.ErrNotExist)
	}
	e.state.open(path)
	return nil
}

func (e *MemoryEnvironment) SetCurrentSession(name string) error {
	e.state.Session = name
	return nil
}

func (e *MemoryEnvironment) SetSearchPath(searchPath string) error {
	var kept []string
	var errs []error
	for _, entry := range domain.SplitSearchPath(searchPath) {
		if e.Missing[entry] {
			errs = append(errs, fmt.Errorf("search path entry %s: %w", entry, os.ErrNotExist))
			continue
		}
		kept = append(kept, entry)
	}
	e.state.SearchPath = domain.JoinSearchPath(kept)
	return errors.Join(errs...)
}

func (e *MemoryEnvironment) Flush() error {
	e.Flushes++
	return nil
}

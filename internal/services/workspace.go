package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

// WorkspaceService edits the live environment between saves
type WorkspaceService struct {
	env     ports.Environment
	pointer ports.LastUsedPointer
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(env ports.Environment, pointer ports.LastUsedPointer) *WorkspaceService {
	return &WorkspaceService{
		env:     env,
		pointer: pointer,
	}
}

// Open opens each path; the ones that fail are reported together
func (s *WorkspaceService) Open(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := s.env.OpenDocument(path); err != nil {
			errs = append(errs, err)
			continue
		}
		logging.Logger.Debug("Document opened", "path", path)
	}

	if err := s.env.Flush(); err != nil {
		return fmt.Errorf("failed to persist workspace: %w", err)
	}
	return errors.Join(errs...)
}

// Close closes one document
func (s *WorkspaceService) Close(path string) error {
	if err := s.env.CloseDocument(path); err != nil {
		return err
	}
	return s.flush()
}

// CloseAll closes every document
func (s *WorkspaceService) CloseAll() error {
	if err := s.env.CloseAllDocuments(); err != nil {
		return err
	}
	return s.flush()
}

// Focus makes an open document the active one
func (s *WorkspaceService) Focus(path string) error {
	if err := s.env.FocusDocument(path); err != nil {
		return err
	}
	return s.flush()
}

// Cd changes the working directory
func (s *WorkspaceService) Cd(dir string) error {
	if err := s.env.ChangeDirectory(dir); err != nil {
		return err
	}
	logging.Logger.Info("Working directory changed", "dir", s.env.WorkingDirectory())
	return s.flush()
}

// PathAdd appends dir to the search path
func (s *WorkspaceService) PathAdd(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid directory %s: %w", dir, err)
	}

	setErr := s.env.SetSearchPath(domain.AppendSearchPath(s.env.SearchPath(), abs))
	if err := s.flush(); err != nil {
		return err
	}
	return setErr
}

// PathRemove drops dir from the search path
func (s *WorkspaceService) PathRemove(dir string) error {
	entries := domain.SplitSearchPath(s.env.SearchPath())

	target := filepath.Clean(dir)
	if !slices.ContainsFunc(entries, func(e string) bool { return filepath.Clean(e) == target }) {
		abs, err := filepath.Abs(dir)
		if err != nil || !slices.ContainsFunc(entries, func(e string) bool { return filepath.Clean(e) == abs }) {
			return fmt.Errorf("not on the search path: %s", dir)
		}
		target = abs
	}

	setErr := s.env.SetSearchPath(domain.RemoveSearchPath(s.env.SearchPath(), target))
	if err := s.flush(); err != nil {
		return err
	}
	return setErr
}

// Status describes the live environment
func (s *WorkspaceService) Status(ctx context.Context) (*Status, error) {
	last, err := s.pointer.LastUsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last session: %w", err)
	}

	return &Status{
		ActiveDocument:   s.env.ActiveDocument(),
		CurrentSession:   s.env.CurrentSession(),
		Documents:        s.env.Documents(),
		LastUsed:         last,
		SearchPath:       domain.SplitSearchPath(s.env.SearchPath()),
		WorkingDirectory: s.env.WorkingDirectory(),
	}, nil
}

func (s *WorkspaceService) flush() error {
	if err := s.env.Flush(); err != nil {
		return fmt.Errorf("failed to persist workspace: %w", err)
	}
	return nil
}

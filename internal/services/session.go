package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
)

// SessionService saves the live environment into named records and restores them
type SessionService struct {
	env      ports.Environment
	filter   domain.SearchPathFilter
	now      func() time.Time
	prompter ports.Prompter
	repo     ports.RecordRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(
	repo ports.RecordRepository,
	env ports.Environment,
	prompter ports.Prompter,
	filter domain.SearchPathFilter,
) *SessionService {
	return &SessionService{
		env:      env,
		filter:   filter,
		now:      func() time.Time { return time.Now().UTC() },
		prompter: prompter,
		repo:     repo,
	}
}

// Save writes the current session. Without force the user is asked first.
// With no current session nothing happens.
func (s *SessionService) Save(ctx context.Context, force bool) (SaveOutcome, error) {
	name := s.env.CurrentSession()
	if name == "" {
		logging.Logger.Debug("No current session, nothing to save")
		return SaveSkipped, nil
	}

	if !force {
		decision, err := s.prompter.Confirm(ctx, "Save session", fmt.Sprintf("Save session %s?", name))
		if err != nil {
			return SaveSkipped, fmt.Errorf("failed to confirm save: %w", err)
		}
		switch decision {
		case domain.DecisionYes:
		case domain.DecisionNo:
			logging.Logger.Info("Save declined", "session", name)
			return SaveSkipped, nil
		default:
			logging.Logger.Info("Save cancelled", "session", name)
			return SaveSkipped, domain.ErrCancelled
		}
	}

	record := s.snapshot(name)
	s.keepSavedAt(ctx, &record)
	logging.Logger.Info("Saving session",
		"session", name,
		"documents", len(record.OpenFiles),
		"working_directory", record.WorkingDirectory)

	if err := s.repo.Put(ctx, record); err != nil {
		logging.Logger.Error("Failed to save session", "session", name, "error", err)
		return SaveSkipped, fmt.Errorf("failed to save session %s: %w", name, err)
	}
	if err := s.repo.SetLastUsed(ctx, name); err != nil {
		logging.Logger.Error("Failed to update last session pointer", "session", name, "error", err)
		return SaveSkipped, fmt.Errorf("failed to update last session pointer: %w", err)
	}

	logging.Logger.Info("Session saved", "session", name)
	return SaveWritten, nil
}

// keepSavedAt reuses the stored timestamp when nothing changed, so
// saving the same environment twice writes the same record
func (s *SessionService) keepSavedAt(ctx context.Context, record *domain.Record) {
	previous, err := s.repo.Get(ctx, record.Name)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			logging.Logger.Debug("Could not read previous record", "session", record.Name, "error", err)
		}
		return
	}
	if previous.SameSnapshot(*record) {
		record.SavedAt = previous.SavedAt
	}
}

// snapshot captures the live environment as a record
func (s *SessionService) snapshot(name string) domain.Record {
	documents := s.env.Documents()

	active := s.env.ActiveDocument()
	if !slices.Contains(documents, active) {
		active = ""
	}

	searchPath, removed := s.filter.Apply(s.env.SearchPath())
	if len(removed) > 0 {
		logging.Logger.Debug("Search path entries not saved", "entries", removed)
	}

	return domain.Record{
		ActiveFile:       active,
		Name:             name,
		OpenFiles:        documents,
		SavedAt:          s.now(),
		SearchPath:       searchPath,
		WorkingDirectory: s.env.WorkingDirectory(),
	}
}

// New saves the current session (asking first), then starts a new one.
// An empty name is asked for. Replacing an existing record needs a yes.
func (s *SessionService) New(ctx context.Context, name string) (string, error) {
	if _, err := s.Save(ctx, false); err != nil {
		return "", err
	}

	if name == "" {
		value, ok, err := s.prompter.Prompt(ctx, "Session name:", "New session", "")
		if err != nil {
			return "", fmt.Errorf("failed to ask for a session name: %w", err)
		}
		if !ok {
			return "", domain.ErrCancelled
		}
		name = value
	}

	name = domain.SanitizeName(name)
	if err := domain.ValidateName(name); err != nil {
		return "", err
	}

	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to check session %s: %w", name, err)
	}
	if exists {
		decision, err := s.prompter.Confirm(ctx, "Session exists",
			fmt.Sprintf("Session %s already exists. Overwrite it?", name))
		if err != nil {
			return "", fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		switch decision {
		case domain.DecisionYes:
			logging.Logger.Info("Overwriting existing session", "session", name)
		case domain.DecisionNo:
			logging.Logger.Info("Overwrite declined", "session", name)
			return "", fmt.Errorf("%w (%w): %s", domain.ErrCancelled, domain.ErrSessionExists, name)
		default:
			return "", domain.ErrCancelled
		}
	}

	logging.Logger.Info("Starting new session", "session", name)
	if err := s.env.SetCurrentSession(name); err != nil {
		return "", fmt.Errorf("failed to set current session: %w", err)
	}
	if _, err := s.Save(ctx, true); err != nil {
		return "", err
	}
	if err := s.env.Flush(); err != nil {
		return "", fmt.Errorf("failed to persist workspace: %w", err)
	}

	return name, nil
}

// Load saves the current session (asking first), then restores name.
// An empty name is chosen from the stored records.
func (s *SessionService) Load(ctx context.Context, name string) (*LoadResult, error) {
	if _, err := s.Save(ctx, false); err != nil {
		return nil, err
	}

	if name == "" {
		names, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(names) == 0 {
			return nil, domain.ErrNoSessions
		}

		choice, ok, err := s.prompter.Choose(ctx, "Load session", names)
		if err != nil {
			return nil, fmt.Errorf("failed to choose a session: %w", err)
		}
		if !ok {
			return nil, domain.ErrCancelled
		}
		name = choice
	}

	record, err := s.repo.Get(ctx, domain.SanitizeName(name))
	if err != nil {
		return nil, err
	}

	return s.apply(*record)
}

// apply restores record into the environment. Only the working directory
// is fatal; it is changed first so a failure leaves everything untouched.
func (s *SessionService) apply(record domain.Record) (*LoadResult, error) {
	logging.Logger.Info("Restoring session",
		"session", record.Name,
		"documents", len(record.OpenFiles),
		"working_directory", record.WorkingDirectory)

	result := &LoadResult{Name: record.Name}

	if record.WorkingDirectory != "" {
		if err := s.env.ChangeDirectory(record.WorkingDirectory); err != nil {
			logging.Logger.Error("Failed to restore working directory", "session", record.Name, "error", err)
			return nil, fmt.Errorf("failed to restore session %s: %w", record.Name, err)
		}
	}

	if err := s.env.CloseAllDocuments(); err != nil {
		return nil, fmt.Errorf("failed to close documents: %w", err)
	}

	for _, path := range record.OpenFiles {
		if err := s.env.OpenDocument(path); err != nil {
			logging.Logger.Warn("Document not restored", "path", path, "error", err)
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}
		result.Opened++
	}

	if record.ActiveFile != "" {
		if err := s.env.FocusDocument(record.ActiveFile); err != nil {
			logging.Logger.Warn("Active document not restored", "path", record.ActiveFile, "error", err)
			result.Warnings = append(result.Warnings, err.Error())
		}
	}

	searchPath := domain.AppendSearchPath(record.SearchPath, s.env.InstallDir())
	if err := s.env.SetSearchPath(searchPath); err != nil {
		for _, e := range splitJoined(err) {
			logging.Logger.Warn("Search path entry not restored", "error", e)
			result.Warnings = append(result.Warnings, e.Error())
		}
	}

	if err := s.env.SetCurrentSession(record.Name); err != nil {
		return nil, fmt.Errorf("failed to set current session: %w", err)
	}
	if err := s.env.Flush(); err != nil {
		return nil, fmt.Errorf("failed to persist workspace: %w", err)
	}

	logging.Logger.Info("Session restored",
		"session", record.Name,
		"opened", result.Opened,
		"warnings", len(result.Warnings))
	return result, nil
}

// splitJoined unpacks an errors.Join result
func splitJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// List returns the stored session names, sorted
func (s *SessionService) List(ctx context.Context) ([]string, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return names, nil
}

// Show returns a stored record
func (s *SessionService) Show(ctx context.Context, name string) (*domain.Record, error) {
	return s.repo.Get(ctx, domain.SanitizeName(name))
}

// LastUsed returns the last saved session name, "" if none
func (s *SessionService) LastUsed(ctx context.Context) (string, error) {
	return s.repo.LastUsed(ctx)
}

// Startup offers the last-used session according to mode.
// It returns nil when nothing was restored. A live session other than the
// last-used one is saved first (asking); cancelling keeps it.
func (s *SessionService) Startup(ctx context.Context, mode RestoreMode) (*LoadResult, error) {
	if mode == RestoreOff {
		return nil, nil
	}

	last, err := s.repo.LastUsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last session: %w", err)
	}
	if last == "" {
		logging.Logger.Debug("No last session to restore")
		return nil, nil
	}

	current := s.env.CurrentSession()
	if current == last {
		logging.Logger.Info("Last session is already live, not restoring", "session", last)
		return nil, nil
	}

	record, err := s.repo.Get(ctx, last)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrInvalidName) {
			logging.Logger.Warn("Last session is gone, not restoring", "session", last, "error", err)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read last session: %w", err)
	}

	if mode == RestorePrompt {
		decision, err := s.prompter.Confirm(ctx, "Restore session", fmt.Sprintf("Restore last session %s?", last))
		if err != nil {
			return nil, fmt.Errorf("failed to confirm restore: %w", err)
		}
		if decision != domain.DecisionYes {
			logging.Logger.Info("Restore declined", "session", last, "decision", decision)
			return nil, nil
		}
	}

	if current != "" {
		if _, err := s.Save(ctx, false); err != nil {
			if errors.Is(err, domain.ErrCancelled) {
				logging.Logger.Info("Restore cancelled, keeping live session", "session", current)
				return nil, nil
			}
			return nil, err
		}
	}

	return s.apply(*record)
}

// Shutdown saves the current session, asking first
func (s *SessionService) Shutdown(ctx context.Context) (SaveOutcome, error) {
	logging.Logger.Debug("Running shutdown hook", "session", s.env.CurrentSession())
	return s.Save(ctx, false)
}

package cmd

import (
	"fmt"

	adaptereditor "workset/internal/adapters/editor"
	adapterstorage "workset/internal/adapters/storage"
	adapterworkspace "workset/internal/adapters/workspace"
	"workset/internal/config"
	"workset/internal/domain"
	"workset/internal/logging"
	"workset/internal/ports"
	"workset/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	SessionService   *services.SessionService
	WorkspaceService *services.WorkspaceService

	// Environment is the live workspace the services act on
	Environment ports.Environment

	// Internal - for cleanup only
	recordRepo ports.RecordRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, prompter ports.Prompter) (*Container, error) {
	recordRepo, err := newRecordRepository(settings.StorageOrDefault())
	if err != nil {
		return nil, err
	}

	var editorOpener ports.EditorOpener
	if settings.OpenInEditorOrDefault() {
		editorOpener = adaptereditor.NewOpener()
	}

	env, err := adapterworkspace.NewFileEnvironment(config.GetWorkspacePath(), editorOpener, settings.Editor)
	if err != nil {
		recordRepo.Close()
		return nil, err
	}

	filter := domain.NewSearchPathFilter(settings.SearchPathExclude)

	return &Container{
		Environment:      env,
		SessionService:   services.NewSessionService(recordRepo, env, prompter, filter),
		WorkspaceService: services.NewWorkspaceService(env, recordRepo),
		recordRepo:       recordRepo,
	}, nil
}

func newRecordRepository(storage string) (ports.RecordRepository, error) {
	logging.Logger.Debug("Opening record storage", "storage", storage)

	switch storage {
	case config.StorageSQLite:
		return adapterstorage.NewSQLiteRepository(config.GetDBPath())
	case config.StorageFiles:
		return adapterstorage.NewFileRepository(config.GetSessionsPath())
	default:
		return nil, fmt.Errorf("unknown storage %q", storage)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.recordRepo != nil {
		return c.recordRepo.Close()
	}
	return nil
}

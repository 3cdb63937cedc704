package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workset/internal/adapters/storage"
	"workset/internal/adapters/workspace"
	"workset/internal/domain"
	"workset/internal/ports/mocks"
)

var testFilter = domain.SearchPathFilter{TempRoots: []string{"/tmp"}}

// newLiveEnvironment returns an environment with session alpha and two documents
func newLiveEnvironment() *workspace.MemoryEnvironment {
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	env.SetCurrentSession("alpha")
	env.OpenDocument("/work/a.go")
	env.OpenDocument("/work/b.go")
	env.FocusDocument("/work/a.go")
	env.SetSearchPath(domain.JoinSearchPath([]string{"/work/lib", "/tmp/scratch", "/opt/workset"}))
	return env
}

func newFileRepository(t *testing.T) *storage.FileRepository {
	t.Helper()
	repo, err := storage.NewFileRepository(filepath.Join(t.TempDir(), "sessions"))
	require.NoError(t, err)
	return repo
}

func TestSave_NoCurrentSessionSkips(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")

	service := NewSessionService(repo, env, prompter, testFilter)

	outcome, err := service.Save(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, SaveSkipped, outcome)
}

func TestSave_Declined(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything, "Save session alpha?").
		Return(domain.DecisionNo, nil)

	service := NewSessionService(repo, newLiveEnvironment(), prompter, testFilter)

	outcome, err := service.Save(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, SaveSkipped, outcome)
}

func TestSave_CancelPropagates(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DecisionCancel, nil)

	service := NewSessionService(repo, newLiveEnvironment(), prompter, testFilter)

	_, err := service.Save(context.Background(), false)
	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestSave_WritesFilteredSnapshotAndPointer(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DecisionYes, nil)

	repo.EXPECT().Get(mock.Anything, "alpha").Return(nil, domain.ErrSessionNotFound).Once()
	repo.EXPECT().Put(mock.Anything, mock.MatchedBy(func(r domain.Record) bool {
		return r.Name == "alpha" &&
			r.ActiveFile == "/work/a.go" &&
			r.WorkingDirectory == "/work" &&
			r.SearchPath == domain.JoinSearchPath([]string{"/work/lib", "/opt/workset"}) &&
			len(r.OpenFiles) == 2 &&
			!r.SavedAt.IsZero()
	})).Return(nil).Once()
	repo.EXPECT().SetLastUsed(mock.Anything, "alpha").Return(nil).Once()

	service := NewSessionService(repo, newLiveEnvironment(), prompter, testFilter)

	outcome, err := service.Save(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, SaveWritten, outcome)
}

func TestSave_ForceSkipsConfirmation(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	repo.EXPECT().Get(mock.Anything, "alpha").Return(nil, domain.ErrSessionNotFound).Once()
	repo.EXPECT().Put(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().SetLastUsed(mock.Anything, "alpha").Return(nil).Once()

	service := NewSessionService(repo, newLiveEnvironment(), prompter, testFilter)

	outcome, err := service.Save(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, SaveWritten, outcome)
}

func TestSave_PutFailureLeavesPointer(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	repo.EXPECT().Get(mock.Anything, "alpha").Return(nil, domain.ErrSessionNotFound).Once()
	repo.EXPECT().Put(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	service := NewSessionService(repo, newLiveEnvironment(), prompter, testFilter)

	_, err := service.Save(context.Background(), true)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSave_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	service := NewSessionService(repo, newLiveEnvironment(), mocks.NewMockPrompter(t), testFilter)
	path := filepath.Join(repo.Dir(), "alpha.toml")

	_, err := service.Save(ctx, true)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = service.Save(ctx, true)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestSave_ChangedSnapshotRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	env := newLiveEnvironment()
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	earlier := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)
	service.now = func() time.Time { return earlier }

	_, err := service.Save(ctx, true)
	require.NoError(t, err)

	service.now = func() time.Time { return later }
	_, err = service.Save(ctx, true)
	require.NoError(t, err)
	got, err := repo.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, got.SavedAt.Equal(earlier), "unchanged snapshot keeps its timestamp")

	require.NoError(t, env.CloseDocument("/work/b.go"))
	_, err = service.Save(ctx, true)
	require.NoError(t, err)
	got, err = repo.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, got.SavedAt.Equal(later))
}

func TestNew_PromptsAndSanitizesName(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Prompt(mock.Anything, "Session name:", "New session", "").
		Return("my session", true, nil)

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, prompter, testFilter)

	name, err := service.New(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "my_session", name)
	assert.Equal(t, "my_session", env.CurrentSession())
	assert.Equal(t, 1, env.Flushes)

	last, err := repo.LastUsed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "my_session", last)

	exists, err := repo.Exists(ctx, "my_session")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNew_EmptyNameCancels(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Prompt(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", false, nil)

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, prompter, testFilter)

	_, err := service.New(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Empty(t, env.CurrentSession())
}

func TestNew_CancelledPreSaveAborts(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DecisionCancel, nil).Once()

	env := newLiveEnvironment()
	service := NewSessionService(repo, env, prompter, testFilter)

	_, err := service.New(context.Background(), "beta")
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Equal(t, "alpha", env.CurrentSession())
}

func TestNew_InvalidName(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	_, err := service.New(context.Background(), "list")
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestNew_OverwriteGating(t *testing.T) {
	tests := []struct {
		name      string
		decision  domain.Decision
		expectErr error
	}{
		{"no", domain.DecisionNo, domain.ErrSessionExists},
		{"no is a cancellation", domain.DecisionNo, domain.ErrCancelled},
		{"cancel", domain.DecisionCancel, domain.ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newFileRepository(t)
			existing := domain.Record{Name: "beta", OpenFiles: []string{"/old.go"}, WorkingDirectory: "/old"}
			require.NoError(t, repo.Put(ctx, existing))

			prompter := mocks.NewMockPrompter(t)
			prompter.EXPECT().Confirm(mock.Anything, "Session exists", mock.Anything).
				Return(tt.decision, nil).Once()

			env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
			service := NewSessionService(repo, env, prompter, testFilter)

			_, err := service.New(ctx, "beta")
			assert.ErrorIs(t, err, tt.expectErr)

			got, err := repo.Get(ctx, "beta")
			require.NoError(t, err)
			assert.True(t, existing.SameSnapshot(*got), "record must be untouched")
			assert.Empty(t, env.CurrentSession())
		})
	}
}

func TestNew_OverwriteConfirmed(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	require.NoError(t, repo.Put(ctx, domain.Record{Name: "beta", WorkingDirectory: "/old"}))

	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, "Session exists", mock.Anything).
		Return(domain.DecisionYes, nil).Once()

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, prompter, testFilter)

	_, err := service.New(ctx, "beta")
	require.NoError(t, err)

	got, err := repo.Get(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, "/work", got.WorkingDirectory)
}

func TestLoad_NoSessions(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]string{}, nil)

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	_, err := service.Load(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoSessions)
}

func TestLoad_NothingChosenCancels(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]string{"alpha", "beta"}, nil)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Choose(mock.Anything, "Load session", []string{"alpha", "beta"}).
		Return("", false, nil)

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, prompter, testFilter)

	_, err := service.Load(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrCancelled)
}

func TestLoad_CancelledPreSaveAborts(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DecisionCancel, nil).Once()

	env := newLiveEnvironment()
	service := NewSessionService(repo, env, prompter, testFilter)

	_, err := service.Load(context.Background(), "beta")
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Equal(t, []string{"/work/a.go", "/work/b.go"}, env.Documents())
}

func TestLoad_Missing(t *testing.T) {
	repo := newFileRepository(t)
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	_, err := service.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)

	source := newLiveEnvironment()
	saver := NewSessionService(repo, source, mocks.NewMockPrompter(t), testFilter)
	_, err := saver.Save(ctx, true)
	require.NoError(t, err)

	target := workspace.NewMemoryEnvironment("/elsewhere", "/opt/workset")
	target.OpenDocument("/elsewhere/stale.go")
	loader := NewSessionService(repo, target, mocks.NewMockPrompter(t), testFilter)

	result, err := loader.Load(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", result.Name)
	assert.Equal(t, 2, result.Opened)
	assert.Empty(t, result.Warnings)

	assert.Equal(t, "alpha", target.CurrentSession())
	assert.Equal(t, []string{"/work/a.go", "/work/b.go"}, target.Documents())
	assert.Equal(t, "/work/a.go", target.ActiveDocument())
	assert.Equal(t, "/work", target.WorkingDirectory())
	assert.Equal(t, domain.JoinSearchPath([]string{"/work/lib", "/opt/workset"}), target.SearchPath())
	assert.Equal(t, 1, target.Flushes)
}

func TestLoad_ReappendsInstallDir(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	require.NoError(t, repo.Put(ctx, domain.Record{Name: "alpha", SearchPath: "/work/lib", WorkingDirectory: "/work"}))

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	_, err := service.Load(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, domain.JoinSearchPath([]string{"/work/lib", "/opt/workset"}), env.SearchPath())
}

func TestLoad_MissingDocumentIsWarning(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	require.NoError(t, repo.Put(ctx, domain.Record{
		ActiveFile:       "/work/gone.go",
		Name:             "alpha",
		OpenFiles:        []string{"/work/a.go", "/work/gone.go"},
		SearchPath:       "/work/missing-lib",
		WorkingDirectory: "/work",
	}))

	env := workspace.NewMemoryEnvironment("/", "/opt/workset")
	env.Missing["/work/gone.go"] = true
	env.Missing["/work/missing-lib"] = true
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	result, err := service.Load(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Opened)
	assert.Len(t, result.Warnings, 3, "missing document, unfocusable active file, missing search path entry")
	assert.Equal(t, []string{"/work/a.go"}, env.Documents())
	assert.Equal(t, "/opt/workset", env.SearchPath())
	assert.Equal(t, "alpha", env.CurrentSession())
}

func TestLoad_MissingWorkingDirectoryAborts(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	require.NoError(t, repo.Put(ctx, domain.Record{
		Name:             "beta",
		OpenFiles:        []string{"/gone/x.go"},
		WorkingDirectory: "/gone",
	}))

	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	env.OpenDocument("/work/a.go")
	env.Missing["/gone"] = true
	service := NewSessionService(repo, env, mocks.NewMockPrompter(t), testFilter)

	_, err := service.Load(ctx, "beta")
	require.Error(t, err)
	assert.Equal(t, []string{"/work/a.go"}, env.Documents())
	assert.Equal(t, "/work", env.WorkingDirectory())
	assert.Empty(t, env.CurrentSession())
	assert.Zero(t, env.Flushes)
}

func TestLoad_DoesNotMovePointer(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	require.NoError(t, repo.Put(ctx, domain.Record{Name: "beta", WorkingDirectory: "/work"}))

	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, mock.Anything, "Save session alpha?").
		Return(domain.DecisionYes, nil).Once()

	env := newLiveEnvironment()
	service := NewSessionService(repo, env, prompter, testFilter)

	_, err := service.Load(ctx, "beta")
	require.NoError(t, err)

	last, err := repo.LastUsed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alpha", last, "pre-load save moves the pointer, loading does not")
	assert.Equal(t, "beta", env.CurrentSession())
}

func TestLoad_ChoosesFromList(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	require.NoError(t, repo.Put(ctx, domain.Record{Name: "beta", WorkingDirectory: "/work"}))
	require.NoError(t, repo.SetLastUsed(ctx, "beta"))

	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Choose(mock.Anything, mock.Anything, []string{"beta"}).Return("beta", true, nil)

	env := workspace.NewMemoryEnvironment("/", "/opt/workset")
	service := NewSessionService(repo, env, prompter, testFilter)

	result, err := service.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "beta", result.Name)
}

func TestStartup(t *testing.T) {
	tests := []struct {
		name        string
		mode        RestoreMode
		pointer     string
		decision    domain.Decision
		expectAsk   bool
		expectLoads bool
	}{
		{"off", RestoreOff, "alpha", "", false, false},
		{"auto", RestoreAuto, "alpha", "", false, true},
		{"prompt yes", RestorePrompt, "alpha", domain.DecisionYes, true, true},
		{"prompt no", RestorePrompt, "alpha", domain.DecisionNo, true, false},
		{"prompt cancel", RestorePrompt, "alpha", domain.DecisionCancel, true, false},
		{"no pointer", RestoreAuto, "", "", false, false},
		{"pointer to deleted record", RestoreAuto, "ghost", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newFileRepository(t)
			require.NoError(t, repo.Put(ctx, domain.Record{
				Name:             "alpha",
				OpenFiles:        []string{"/work/a.go"},
				WorkingDirectory: "/work",
			}))
			if tt.pointer != "" {
				require.NoError(t, repo.SetLastUsed(ctx, tt.pointer))
			}

			prompter := mocks.NewMockPrompter(t)
			if tt.expectAsk {
				prompter.EXPECT().Confirm(mock.Anything, "Restore session", "Restore last session alpha?").
					Return(tt.decision, nil).Once()
			}

			env := workspace.NewMemoryEnvironment("/", "/opt/workset")
			service := NewSessionService(repo, env, prompter, testFilter)

			result, err := service.Startup(ctx, tt.mode)
			require.NoError(t, err)
			if tt.expectLoads {
				require.NotNil(t, result)
				assert.Equal(t, "alpha", env.CurrentSession())
				assert.Equal(t, []string{"/work/a.go"}, env.Documents())
			} else {
				assert.Nil(t, result)
				assert.Empty(t, env.CurrentSession())
			}
		})
	}
}

func TestStartup_LiveSession(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		decision    domain.Decision
		expectAsk   bool
		expectLoads bool
		expectSaved bool
	}{
		{"live session is the last one", "alpha", "", false, false, false},
		{"other live session is saved first", "beta", domain.DecisionYes, true, true, true},
		{"other live session not saved", "beta", domain.DecisionNo, true, true, false},
		{"cancel keeps live session", "beta", domain.DecisionCancel, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newFileRepository(t)
			require.NoError(t, repo.Put(ctx, domain.Record{
				Name:             "alpha",
				OpenFiles:        []string{"/work/a.go"},
				WorkingDirectory: "/work",
			}))
			require.NoError(t, repo.SetLastUsed(ctx, "alpha"))

			prompter := mocks.NewMockPrompter(t)
			if tt.expectAsk {
				prompter.EXPECT().Confirm(mock.Anything, "Save session", "Save session "+tt.current+"?").
					Return(tt.decision, nil).Once()
			}

			env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
			require.NoError(t, env.SetCurrentSession(tt.current))
			require.NoError(t, env.OpenDocument("/work/live.go"))
			service := NewSessionService(repo, env, prompter, testFilter)

			result, err := service.Startup(ctx, RestoreAuto)
			require.NoError(t, err)

			if tt.expectLoads {
				require.NotNil(t, result)
				assert.Equal(t, "alpha", env.CurrentSession())
				assert.Equal(t, []string{"/work/a.go"}, env.Documents())
			} else {
				assert.Nil(t, result)
				assert.Equal(t, tt.current, env.CurrentSession())
				assert.Equal(t, []string{"/work/live.go"}, env.Documents())
			}

			exists, err := repo.Exists(ctx, tt.current)
			require.NoError(t, err)
			if tt.current != "alpha" {
				assert.Equal(t, tt.expectSaved, exists)
			}
			if tt.expectSaved {
				saved, err := repo.Get(ctx, tt.current)
				require.NoError(t, err)
				assert.Equal(t, []string{"/work/live.go"}, saved.OpenFiles)
			}
		})
	}
}

func TestShutdown_AsksToSave(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	prompter := mocks.NewMockPrompter(t)
	prompter.EXPECT().Confirm(mock.Anything, "Save session", "Save session alpha?").
		Return(domain.DecisionYes, nil).Once()
	repo.EXPECT().Get(mock.Anything, "alpha").Return(nil, domain.ErrSessionNotFound).Once()
	repo.EXPECT().Put(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().SetLastUsed(mock.Anything, "alpha").Return(nil).Once()

	service := NewSessionService(repo, newLiveEnvironment(), prompter, testFilter)

	outcome, err := service.Shutdown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SaveWritten, outcome)
}

func TestList_ExcludesPointer(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t)
	service := NewSessionService(repo, newLiveEnvironment(), mocks.NewMockPrompter(t), testFilter)

	_, err := service.Save(ctx, true)
	require.NoError(t, err)

	names, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, names)
}

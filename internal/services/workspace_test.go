package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workset/internal/adapters/workspace"
	"workset/internal/domain"
	"workset/internal/ports/mocks"
)

func TestWorkspace_OpenReportsFailures(t *testing.T) {
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	env.Missing["/work/gone.go"] = true
	service := NewWorkspaceService(env, mocks.NewMockRecordRepository(t))

	err := service.Open("/work/a.go", "/work/gone.go", "/work/b.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/work/gone.go")
	assert.Equal(t, []string{"/work/a.go", "/work/b.go"}, env.Documents())
	assert.Equal(t, 1, env.Flushes)
}

func TestWorkspace_CloseFocus(t *testing.T) {
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	service := NewWorkspaceService(env, mocks.NewMockRecordRepository(t))
	require.NoError(t, service.Open("/work/a.go", "/work/b.go"))

	require.NoError(t, service.Focus("/work/a.go"))
	assert.Equal(t, "/work/a.go", env.ActiveDocument())

	require.NoError(t, service.Close("/work/a.go"))
	assert.Equal(t, []string{"/work/b.go"}, env.Documents())

	assert.Error(t, service.Focus("/work/a.go"))

	require.NoError(t, service.CloseAll())
	assert.Empty(t, env.Documents())
}

func TestWorkspace_Cd(t *testing.T) {
	env := workspace.NewMemoryEnvironment("/work", "/opt/workset")
	env.Missing["/gone"] = true
	service := NewWorkspaceService(env, mocks.NewMockRecordRepository(t))

	require.NoError(t, service.Cd("/other"))
	assert.Equal(t, "/other", env.WorkingDirectory())

	assert.Error(t, service.Cd("/gone"))
	assert.Equal(t, "/other", env.WorkingDirectory())
}

func TestWorkspace_PathAddRemove(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")
	require.NoError(t, os.Mkdir(lib, 0755))

	env := workspace.NewMemoryEnvironment(dir, "/opt/workset")
	service := NewWorkspaceService(env, mocks.NewMockRecordRepository(t))

	require.NoError(t, service.PathAdd(lib))
	require.NoError(t, service.PathAdd(lib))
	assert.Equal(t, domain.JoinSearchPath([]string{"/opt/workset", lib}), env.SearchPath())

	require.NoError(t, service.PathRemove(lib))
	assert.Equal(t, "/opt/workset", env.SearchPath())

	assert.Error(t, service.PathRemove(lib))
}

func TestWorkspace_Status(t *testing.T) {
	repo := mocks.NewMockRecordRepository(t)
	repo.EXPECT().LastUsed(mock.Anything).Return("alpha", nil)

	env := newLiveEnvironment()
	service := NewWorkspaceService(env, repo)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alpha", status.CurrentSession)
	assert.Equal(t, "alpha", status.LastUsed)
	assert.Equal(t, "/work/a.go", status.ActiveDocument)
	assert.Equal(t, []string{"/work/a.go", "/work/b.go"}, status.Documents)
	assert.Equal(t, []string{"/work/lib", "/tmp/scratch", "/opt/workset"}, status.SearchPath)
	assert.Equal(t, "/work", status.WorkingDirectory)
}

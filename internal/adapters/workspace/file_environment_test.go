package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workset/internal/domain"
	"workset/internal/ports/mocks"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

// keepWorkingDirectory restores the process directory changed by ChangeDirectory
func keepWorkingDirectory(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestNewFileEnvironment_FreshState(t *testing.T) {
	env, err := NewFileEnvironment(filepath.Join(t.TempDir(), "workspace.json"), nil, "")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Empty(t, env.CurrentSession())
	assert.Empty(t, env.Documents())
	assert.Empty(t, env.ActiveDocument())
	assert.Equal(t, wd, env.WorkingDirectory())
	assert.NotEmpty(t, env.InstallDir())
	assert.Equal(t, env.InstallDir(), env.SearchPath())
}

func TestFileEnvironment_FlushAndReload(t *testing.T) {
	keepWorkingDirectory(t)
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state", "workspace.json")
	a := writeFile(t, filepath.Join(dir, "a.go"))
	b := writeFile(t, filepath.Join(dir, "b.go"))

	env, err := NewFileEnvironment(statePath, nil, "")
	require.NoError(t, err)
	require.NoError(t, env.SetCurrentSession("alpha"))
	require.NoError(t, env.ChangeDirectory(dir))
	require.NoError(t, env.OpenDocument(a))
	require.NoError(t, env.OpenDocument(b))
	require.NoError(t, env.FocusDocument(a))
	require.NoError(t, env.SetSearchPath(dir))
	require.NoError(t, env.Flush())

	reloaded, err := NewFileEnvironment(statePath, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "alpha", reloaded.CurrentSession())
	assert.Equal(t, []string{a, b}, reloaded.Documents())
	assert.Equal(t, a, reloaded.ActiveDocument())
	assert.Equal(t, dir, reloaded.SearchPath())

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(reloaded.WorkingDirectory())
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
}

func TestFileEnvironment_FlushOverwritesLongerContent(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "workspace.json")

	env, err := NewFileEnvironment(statePath, nil, "")
	require.NoError(t, err)
	require.NoError(t, env.SetCurrentSession(strings.Repeat("x", 200)))
	require.NoError(t, env.Flush())
	require.NoError(t, env.SetCurrentSession("short"))
	require.NoError(t, env.Flush())

	reloaded, err := NewFileEnvironment(statePath, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "short", reloaded.CurrentSession())
}

func TestFileEnvironment_CorruptState(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "workspace.json")
	require.NoError(t, os.WriteFile(statePath, []byte("{"), 0644))

	_, err := NewFileEnvironment(statePath, nil, "")
	assert.Error(t, err)
}

func TestFileEnvironment_OpenDocument(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.go"))

	env, err := NewFileEnvironment(filepath.Join(dir, "workspace.json"), nil, "")
	require.NoError(t, err)

	require.NoError(t, env.OpenDocument(a))
	require.NoError(t, env.OpenDocument(a))
	assert.Equal(t, []string{a}, env.Documents(), "reopening does not duplicate")

	assert.Error(t, env.OpenDocument(filepath.Join(dir, "missing.go")))
	assert.Error(t, env.OpenDocument(dir), "directories are not documents")
	assert.Equal(t, []string{a}, env.Documents())
}

func TestFileEnvironment_OpenDocumentLaunchesEditor(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.go"))

	opener := mocks.NewMockEditorOpener(t)
	opener.EXPECT().Open(a, "vim").Return(nil).Once()

	env, err := NewFileEnvironment(filepath.Join(dir, "workspace.json"), opener, "vim")
	require.NoError(t, err)
	require.NoError(t, env.OpenDocument(a))
}

func TestFileEnvironment_EditorFailureKeepsDocument(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.go"))

	opener := mocks.NewMockEditorOpener(t)
	opener.EXPECT().Open(a, mock.Anything).Return(assert.AnError).Once()

	env, err := NewFileEnvironment(filepath.Join(dir, "workspace.json"), opener, "")
	require.NoError(t, err)
	require.NoError(t, env.OpenDocument(a))
	assert.Equal(t, []string{a}, env.Documents())
}

func TestFileEnvironment_CloseAndFocus(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.go"))
	b := writeFile(t, filepath.Join(dir, "b.go"))
	c := writeFile(t, filepath.Join(dir, "c.go"))

	env, err := NewFileEnvironment(filepath.Join(dir, "workspace.json"), nil, "")
	require.NoError(t, err)
	for _, p := range []string{a, b, c} {
		require.NoError(t, env.OpenDocument(p))
	}
	assert.Equal(t, c, env.ActiveDocument())

	require.NoError(t, env.CloseDocument(c))
	assert.Equal(t, b, env.ActiveDocument(), "closing the active document focuses the last one")

	require.NoError(t, env.FocusDocument(a))
	require.NoError(t, env.CloseDocument(b))
	assert.Equal(t, a, env.ActiveDocument())

	assert.Error(t, env.CloseDocument(c))
	assert.Error(t, env.FocusDocument(c))

	require.NoError(t, env.CloseAllDocuments())
	assert.Empty(t, env.Documents())
	assert.Empty(t, env.ActiveDocument())
}

func TestFileEnvironment_ChangeDirectoryErrors(t *testing.T) {
	keepWorkingDirectory(t)
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "a.go"))

	env, err := NewFileEnvironment(filepath.Join(dir, "workspace.json"), nil, "")
	require.NoError(t, err)
	before := env.WorkingDirectory()

	assert.Error(t, env.ChangeDirectory(filepath.Join(dir, "missing")))
	assert.Error(t, env.ChangeDirectory(file))
	assert.Equal(t, before, env.WorkingDirectory())
}

func TestFileEnvironment_SetSearchPathReportsMissing(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")
	require.NoError(t, os.Mkdir(lib, 0755))
	missing := filepath.Join(dir, "gone")

	env, err := NewFileEnvironment(filepath.Join(dir, "workspace.json"), nil, "")
	require.NoError(t, err)

	err = env.SetSearchPath(domain.JoinSearchPath([]string{lib, missing}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.Equal(t, lib, env.SearchPath())
}

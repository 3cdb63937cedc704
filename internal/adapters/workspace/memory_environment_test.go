package workspace

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workset/internal/domain"
)

func TestMemoryEnvironment(t *testing.T) {
	env := NewMemoryEnvironment("/work", "/opt/workset")
	env.Missing["/work/gone.go"] = true
	env.Missing["/nowhere"] = true

	assert.Equal(t, "/work", env.WorkingDirectory())
	assert.Equal(t, "/opt/workset", env.SearchPath())

	require.NoError(t, env.OpenDocument("/work/a.go"))
	err := env.OpenDocument("/work/gone.go")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, []string{"/work/a.go"}, env.Documents())

	assert.ErrorIs(t, env.ChangeDirectory("/nowhere"), os.ErrNotExist)
	assert.Equal(t, "/work", env.WorkingDirectory())

	err = env.SetSearchPath(domain.JoinSearchPath([]string{"/lib", "/nowhere"}))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "/lib", env.SearchPath())

	require.NoError(t, env.Flush())
	assert.Equal(t, 1, env.Flushes)
}

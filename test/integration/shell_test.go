package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workset/test/integration/harness"
)

func TestShell(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.CreateDocument("main.go")

	result := harness.RunCommandWithInput(t, env, "new alpha\nopen main.go\nexit\n", "--yes", "shell")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "workset - alpha> ")
	harness.AssertStdoutContains(t, result, "✓ Session 'alpha' saved")

	assert.Len(t, showSession(t, env, "alpha").OpenFiles, 1)
	saved, err := os.ReadFile(filepath.Join(env.SessionsPath(), "alpha.toml"))
	require.NoError(t, err)

	// The live session is the last one, so it is kept and saving it again changes nothing
	result = harness.RunCommandWithInput(t, env, "exit\n", "--yes", "shell")
	harness.AssertSuccess(t, result)
	harness.AssertStderrEmpty(t, result)
	harness.AssertStdoutNotContains(t, result, "restored")
	again, err := os.ReadFile(filepath.Join(env.SessionsPath(), "alpha.toml"))
	require.NoError(t, err)
	assert.Equal(t, string(saved), string(again))

	// A fresh editor state gets the last saved session back
	require.NoError(t, os.Remove(env.WorkspacePath()))
	result = harness.RunCommandWithInput(t, env, "status\n", "--yes", "shell")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "✓ Session 'alpha' restored (1 documents)")

	harness.AssertQuiet(t, run(t, env, "close", "--all"))
	result = run(t, env, "status")
	harness.AssertStdoutContains(t, result, "Documents (0)")
}

func TestShellWithoutTerminalKeepsRecord(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	doc := env.CreateDocument("main.go")

	run(t, env, "new", "alpha")

	// Confirmations are cancelled, so exit stays and end of input leaves without saving
	result := harness.RunCommandWithInput(t, env, "open "+doc+"\nexit\n", "shell")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Exit cancelled")

	assert.Empty(t, showSession(t, env, "alpha").OpenFiles)
}

package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess fails the test unless workset exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"workset %s exited %d\nstdout:\n%s\nstderr:\n%s",
		strings.Join(result.Args, " "), result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure fails the test if workset exited 0
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"workset %s should have failed\nstdout:\n%s",
		strings.Join(result.Args, " "), result.Stdout)
}

// AssertExitCode checks the exact exit status
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"workset %s: want exit %d, got %d\nstdout:\n%s\nstderr:\n%s",
		strings.Join(result.Args, " "), expected, result.ExitCode, result.Stdout, result.Stderr)
}

func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout of workset %s", strings.Join(result.Args, " "))
}

func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout of workset %s", strings.Join(result.Args, " "))
}

func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr of workset %s", strings.Join(result.Args, " "))
}

// AssertStdoutLines compares stdout line by line, ignoring surrounding blank lines
func AssertStdoutLines(tb testing.TB, result CommandResult, expected ...string) {
	tb.Helper()
	assert.Equal(tb, expected, outputLines(result.Stdout), "stdout of workset %s", strings.Join(result.Args, " "))
}

// AssertQuiet checks a command printed nothing at all
func AssertQuiet(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertStdoutEmpty(tb, result)
	AssertStderrEmpty(tb, result)
}

func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), "stdout of workset %s", strings.Join(result.Args, " "))
}

func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr), "stderr of workset %s", strings.Join(result.Args, " "))
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"workset %s printed invalid JSON:\n%s", strings.Join(result.Args, " "), result.Stdout)
}

// AssertJSONContains decodes a JSON object from stdout and checks one field
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "field %q of workset %s", key, strings.Join(result.Args, " "))
}

func outputLines(output string) []string {
	trimmed := strings.Trim(output, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

// Package harness provides utilities for integration testing the workset CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - WORKSET_HOME: Isolated per test (temp directory)
//   - WORKSET_DEBUG: Disabled to reduce noise
//   - WORKSET_EDITOR: Set to a no-op command so opening documents never blocks
package harness

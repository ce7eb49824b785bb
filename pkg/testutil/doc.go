// Package testutil provides utilities for testing keepspec components.
//
// Key components:
//   - TestEnvironment: temp directory with isolated XDG config and state homes
//   - FileTree: declarative file layout written under a base directory
//   - WriteFile: single-file helper returning the absolute path
//
// Usage guidelines:
//   - Test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil

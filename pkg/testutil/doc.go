// Package testutil provides utilities for testing dashtabs components.
//
// Key components:
//   - TestEnvironment: isolated XDG config and state directories per test
//   - CreateFile: write fixture files, creating parent directories
//   - TabNames: flatten a tab group into its names for ordering assertions
//
// Usage guidelines:
//   - Tests that load configuration or set up logging must use a
//     TestEnvironment so they never read or write the real user directories
//   - Test data should be defined inline; testdata/ is for manifests shared
//     by several tests
package testutil

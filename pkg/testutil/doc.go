// Package testutil provides utilities for testing web components.
//
// Key components:
//   - TestEnvironment: isolates HOME, the XDG directories and every WEB_
//     variable into a temp directory, with helpers to write and read the
//     config file
//   - Assertions: checks on the alias table as stored on disk
//
// Usage guidelines:
//   - Every test touching the config file should use NewTestEnvironment so
//     the user's real config is never read or written
//   - Config content is defined inline in the test
package testutil

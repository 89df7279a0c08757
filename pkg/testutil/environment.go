// pkg/testutil/environment.go
// DEPENDENCIES: pkg/paths, pkg/aliases
// PURPOSE: Isolated test environments with a private config file

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/web/pkg/aliases"
	"github.com/arthur-debert/web/pkg/paths"
)

// TestEnvironment is a temp HOME with the web config and state directories
// inside it
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string
	StateHome  string
	ConfigFile string

	t *testing.T
}

// NewTestEnvironment isolates the process environment for the duration of
// the test. WEB_CONFIG points at a config file that does not exist yet.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		HomeDir:    filepath.Join(root, "home"),
		ConfigHome: filepath.Join(root, "home", ".config"),
		StateHome:  filepath.Join(root, "home", ".local", "state"),
		t:          t,
	}
	env.ConfigFile = filepath.Join(env.ConfigHome, paths.AppDirName, paths.ConfigFileName)

	if err := os.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home dir: %v", err)
	}

	ClearWebEnv(t)
	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvXDGConfigHome, env.ConfigHome)
	t.Setenv(paths.EnvXDGStateHome, env.StateHome)
	t.Setenv(paths.EnvConfigFile, env.ConfigFile)

	return env
}

// ClearWebEnv unsets every WEB_ variable and the completion protocol
// variables, restoring them when the test ends
func ClearWebEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "WEB_") || key == "COMPLETE" || key == "_WEB_COMPLETE_INDEX" {
			// t.Setenv registers the restore; Unsetenv then removes it for
			// the test body.
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}
}

// WriteConfig replaces the config file with content
func (e *TestEnvironment) WriteConfig(content string) string {
	e.t.Helper()

	if err := os.MkdirAll(filepath.Dir(e.ConfigFile), 0755); err != nil {
		e.t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(e.ConfigFile, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write config: %v", err)
	}
	return e.ConfigFile
}

// ReadConfig returns the config file content, "" when it does not exist
func (e *TestEnvironment) ReadConfig() string {
	e.t.Helper()

	data, err := os.ReadFile(e.ConfigFile)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		e.t.Fatalf("Failed to read config: %v", err)
	}
	return string(data)
}

// Store returns an alias store over the environment's config file
func (e *TestEnvironment) Store() *aliases.Store {
	return aliases.NewStore(e.ConfigFile)
}

// WriteConfig writes content to a config.toml in a fresh temp directory and
// returns its path. It does not touch the environment.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), paths.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

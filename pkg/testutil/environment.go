package testutil

import (
	"path/filepath"
	"testing"
)

// TestEnvironment points the XDG base directories at a temporary tree
type TestEnvironment struct {
	Root       string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates the directories and sets XDG_CONFIG_HOME and
// XDG_STATE_HOME for the duration of the test
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	return env
}

// AppConfigDir is where dashtabs looks for its user config
func (e *TestEnvironment) AppConfigDir() string {
	return filepath.Join(e.ConfigHome, "dashtabs")
}

// WriteConfig writes name (config.toml, config.yaml...) into the user config dir
func (e *TestEnvironment) WriteConfig(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.AppConfigDir(), name, content)
}

// CreateFile writes a file under the environment root
func (e *TestEnvironment) CreateFile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.Root, name, content)
}

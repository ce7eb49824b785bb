// pkg/testutil/environment.go
// DEPENDENCIES: adrg/xdg
// PURPOSE: Isolate tests from the user's XDG directories

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment is a temp directory tree with its own XDG homes
type TestEnvironment struct {
	Root       string
	HomeDir    string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates the directories, points HOME and the XDG
// variables at them and reloads xdg. Everything is restored on cleanup.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		HomeDir:    filepath.Join(root, "home"),
		ConfigHome: filepath.Join(root, "home", ".config"),
		StateHome:  filepath.Join(root, "home", ".local", "state"),
		t:          t,
	}
	for _, dir := range []string{env.HomeDir, env.ConfigHome, env.StateHome} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	// registered first so it runs after the variables are restored
	t.Cleanup(xdg.Reload)
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()

	return env
}

// Path joins rel onto the environment root
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, rel)
}

// WithFileTree writes tree under the environment root
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.Root, tree)
	return env
}

// WithUserConfig writes the keepspec user configuration file
func (env *TestEnvironment) WithUserConfig(content string) string {
	env.t.Helper()
	return WriteFile(env.t, env.ConfigHome, filepath.Join("keepspec", "config.toml"), content)
}

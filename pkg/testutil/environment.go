// pkg/testutil/environment.go
// DEPENDENCIES: pkg/paths
// PURPOSE: Isolate the gestures locations of a test in temp directories

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gestures/pkg/paths"
)

// configEnv lists the variables that can change the configuration or the
// log destination
var configEnv = []string{
	"GESTURES_CONFIG",
	"GESTURES_LIBRARY_PATH",
	"GESTURES_LIBRARY_CODEC",
	"GESTURES_LIBRARY_DIR_MODE",
	"GESTURES_LIBRARY_FILE_MODE",
	"GESTURES_LOGGING_VERBOSITY",
	"GESTURES_LOG_FILE",
}

// TestEnvironment points every gestures location at a temp directory
type TestEnvironment struct {
	Root      string
	DataDir   string
	ConfigDir string
	StateDir  string

	Paths paths.Paths
}

// NewTestEnvironment sets the GESTURES_* and XDG_STATE_HOME variables for
// the duration of the test and clears any configuration overrides.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:      root,
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	for _, key := range configEnv {
		// Setenv registers the restore, Unsetenv makes the variable absent
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	p, err := paths.New()
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p
	return env
}

// LibraryPath returns the default library file of the environment
func (e *TestEnvironment) LibraryPath() string {
	return e.Paths.LibraryPath()
}

// WriteConfig writes content to the user configuration file
func (e *TestEnvironment) WriteConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.MkdirAll(e.ConfigDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(e.Paths.ConfigFilePath(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asokolsky/secretsettings/internal/configs"
)

// setupTestEnvironment isolates the CLI config in a temporary directory and
// disables colors.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	configDir := t.TempDir()
	original := configs.UserSecretSettings
	configs.UserSecretSettings = &configs.UserSettings{UserConfigsPath: configDir}
	t.Cleanup(func() {
		configs.UserSecretSettings = original
		ResetGlobalState()
	})
	return configDir
}

// runCLI executes the root command with args and stdin, returning stdout and
// stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	ResetGlobalState()

	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	root := GetRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// fixture returns the absolute path of a file under testdata/.
func fixture(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", name, err)
	}
	return path
}

// hasLine reports whether out contains line as a whole line.
func hasLine(out, line string) bool {
	for _, l := range strings.Split(out, "\n") {
		if l == line {
			return true
		}
	}
	return false
}

package cmd

import (
	"errors"
	"strings"
	"testing"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

func TestGet(t *testing.T) {
	setupTestEnvironment(t)
	file := fixture(t, "secrets.ini")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"plain value", "", []string{"get", "username", "-r", "realm2", "-f", file}, "bob\n"},
		{"key realm", "", []string{"get", "password", "-r", "realm2", "-f", file, "--key-realm", "secrets"}, "bob-secret\n"},
		{"piped key", iniKey + "\n", []string{"get", "password1", "-r", "realm1", "-f", file, "-k"}, "alice-pa$$w0rd\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, stdout)
			}
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	setupTestEnvironment(t)

	_, _, err := runCLI(t, "", "get", "password", "-r", "realm2", "-f", fixture(t, "secrets.ini"))
	if !errors.Is(err, serrors.ErrKeyNotFound) {
		t.Fatalf("Expected ErrKeyNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "'encrypted-password'") {
		t.Errorf("Expected available keys to be listed, got %q", err.Error())
	}
}

func TestGetRequiresRealm(t *testing.T) {
	setupTestEnvironment(t)

	if _, _, err := runCLI(t, "", "get", "username", "-f", fixture(t, "secrets.ini")); err == nil {
		t.Error("Expected an error without a realm")
	}
}

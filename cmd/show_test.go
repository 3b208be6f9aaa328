package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	cerrors "github.com/asokolsky/secretsettings/internal/errors"
	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

const iniKey = "Th1sIsA32ByteLongEncryptionKey!!"

func TestShowWithoutKey(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "", "show", "realm2", "-f", fixture(t, "secrets.ini"))
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !hasLine(stdout, "encrypted-password: aPWWWAuFg5HSYGWzmlXb5A==") {
		t.Errorf("Expected the encrypted field, got %q", stdout)
	}
	if hasLine(stdout, "password: bob-secret") {
		t.Errorf("Expected no decryption without a key, got %q", stdout)
	}
}

func TestShowWithPipedKey(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, iniKey+"\n", "show", "realm2", "-f", fixture(t, "secrets.ini"), "--key")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !hasLine(stdout, "password: bob-secret") {
		t.Errorf("Expected decrypted password, got %q", stdout)
	}
	if !hasLine(stdout, "encrypted-password: aPWWWAuFg5HSYGWzmlXb5A==") {
		t.Errorf("Expected the encrypted field to be kept, got %q", stdout)
	}
}

func TestShowJSONWithKeyRealm(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "", "show", "realm1", "-f", fixture(t, "secrets.ini"), "--key-realm", "secrets", "-o", "json")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var realm map[string]any
	if err := json.Unmarshal([]byte(stdout), &realm); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\n%s", err, stdout)
	}
	if realm["password1"] != "alice-pa$$w0rd" {
		t.Errorf("Unexpected password1: %v", realm["password1"])
	}
	if realm["password2"] != realm["decrypted-password2"] {
		t.Errorf("Unexpected password2: %v", realm["password2"])
	}
}

func TestShowAllRealms(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "", "show", "-f", fixture(t, "secrets.ini"), "--key-realm", "secrets", "-o", "json")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var doc map[string]map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\n%s", err, stdout)
	}
	if len(doc) != 3 {
		t.Errorf("Expected 3 realms, got %d", len(doc))
	}
	if doc["realm2"]["password"] != "bob-secret" {
		t.Errorf("Unexpected realm2 password: %v", doc["realm2"]["password"])
	}
}

func TestShowRaw(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, iniKey+"\n", "show", "realm2", "-f", fixture(t, "secrets.ini"), "--raw", "--key")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	parts := strings.SplitN(stdout, "(decrypted)", 2)
	if len(parts) != 2 {
		t.Fatalf("Expected raw and decrypted sections, got %q", stdout)
	}
	if !strings.HasPrefix(parts[0], "(as stored)") || hasLine(parts[0], "password: bob-secret") {
		t.Errorf("Unexpected raw section: %q", parts[0])
	}
	if !hasLine(parts[1], "password: bob-secret") {
		t.Errorf("Unexpected decrypted section: %q", parts[1])
	}
}

func TestShowErrors(t *testing.T) {
	setupTestEnvironment(t)
	file := fixture(t, "secrets.ini")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"missing file", "", []string{"show", "-f", file + ".missing"}, serrors.ErrFileNotFound},
		{"missing realm", "", []string{"show", "realm9", "-f", file}, serrors.ErrRealmNotFound},
		{"wrong key", "6543210987654321\n", []string{"show", "realm2", "-f", file, "--key"}, serrors.ErrDecrypt},
		{"short key", "short\n", []string{"show", "realm2", "-f", file, "--key"}, serrors.ErrKeyLength},
		{"conflicting key flags", "", []string{"show", "-f", file, "--key", "--key-realm", "secrets"}, cerrors.ErrKeyFlagsConflict},
		{"bad output", "", []string{"show", "-f", file, "-o", "xml"}, cerrors.ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

package backend

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

func TestININonexistentFile(t *testing.T) {
	path := testFile(t, "does-not-exist.ini")

	_, err := NewINIBackend(path)
	if !errors.Is(err, serrors.ErrFileNotFound) {
		t.Fatalf("Expected ErrFileNotFound, got %v", err)
	}
	if err.Error() != "Failed to find '"+path+"'" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestINIDefaultFile(t *testing.T) {
	wd := chdirTemp(t)
	setHome(t)

	_, err := NewINIBackend("")
	if err == nil || err.Error() != "Failed to find 'secrets.ini'" {
		t.Fatalf("Expected secrets.ini to be looked up, got %v", err)
	}

	writeTestFile(t, filepath.Join(wd, DefaultINIFile), "[realm]\nk = v\n", 0o600)
	b, err := NewINIBackend("")
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}
	if b.Path() != filepath.Join(wd, DefaultINIFile) {
		t.Errorf("Unexpected path: %s", b.Path())
	}
}

func TestINISimple(t *testing.T) {
	b, err := NewINIBackend(testFile(t, "simple.ini"))
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}

	data, err := b.Load("", nil)
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	data1, err := b.Load("realm1", nil)
	if err != nil {
		t.Fatalf("Load(realm1) failed: %v", err)
	}
	data2, err := b.Load("realm2", nil)
	if err != nil {
		t.Fatalf("Load(realm2) failed: %v", err)
	}

	if !reflect.DeepEqual(data["realm1"], data1) {
		t.Errorf("Expected data[realm1]=%v, got %v", data1, data["realm1"])
	}
	if !reflect.DeepEqual(data["realm2"], data2) {
		t.Errorf("Expected data[realm2]=%v, got %v", data2, data["realm2"])
	}
	if len(data) != 2 {
		t.Errorf("Expected 2 realms, got %d", len(data))
	}

	if data1["username"] != "alice" {
		t.Errorf("Unexpected realm1 username: %v", data1["username"])
	}
	if data1["password"] != "1-`~!@#$%^&*()_+[]{},.<>/?" {
		t.Errorf("Unexpected realm1 password: %v", data1["password"])
	}
	if data2["username"] != "bob" {
		t.Errorf("Unexpected realm2 username: %v", data2["username"])
	}
	if data2["password"] != "bar" {
		t.Errorf("Unexpected realm2 password: %v", data2["password"])
	}
}

func TestINIMissingRealm(t *testing.T) {
	path := testFile(t, "simple.ini")
	b, err := NewINIBackend(path)
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}

	for _, realm := range []string{"realm9", "DEFAULT"} {
		_, err = b.Load(realm, nil)
		if !errors.Is(err, serrors.ErrRealmNotFound) {
			t.Fatalf("Load(%s): expected ErrRealmNotFound, got %v", realm, err)
		}
		want := "Failed to locate '" + realm + "' in '" + path + "'"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	}
}

func TestINISecrets(t *testing.T) {
	b, err := NewINIBackend(testFile(t, "secrets.ini"))
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}

	raw, err := b.Load("realm1", nil)
	if err != nil {
		t.Fatalf("Load(realm1) failed: %v", err)
	}
	if _, ok := raw["password1"]; ok {
		t.Error("Expected no decryption without a key")
	}

	secrets, err := b.Load("secrets", nil)
	if err != nil {
		t.Fatalf("Load(secrets) failed: %v", err)
	}
	key := []byte(secrets["key"].(string))

	data, err := b.Load("", key)
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	data1, err := b.Load("realm1", key)
	if err != nil {
		t.Fatalf("Load(realm1) failed: %v", err)
	}
	data2, err := b.Load("realm2", key)
	if err != nil {
		t.Fatalf("Load(realm2) failed: %v", err)
	}

	if !reflect.DeepEqual(data["realm1"], data1) {
		t.Errorf("Expected data[realm1]=%v, got %v", data1, data["realm1"])
	}
	if !reflect.DeepEqual(data["realm2"], data2) {
		t.Errorf("Expected data[realm2]=%v, got %v", data2, data["realm2"])
	}

	if data1["password1"] != "alice-pa$$w0rd" || data1["password1"] != data1["decrypted-password1"] {
		t.Errorf("Unexpected password1: %v", data1["password1"])
	}
	if data1["password2"] != data1["decrypted-password2"] {
		t.Errorf("Unexpected password2: %v", data1["password2"])
	}
	if data2["password"] != data2["decrypted-password"] {
		t.Errorf("Unexpected password: %v", data2["password"])
	}
	if data2["encrypted-password"] != "aPWWWAuFg5HSYGWzmlXb5A==" {
		t.Errorf("Expected encrypted-password to be kept, got %v", data2["encrypted-password"])
	}
}

func TestINIDefaults(t *testing.T) {
	b, err := NewINIBackend(testFile(t, "defaults.ini"))
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}

	all, err := b.Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := all["DEFAULT"]; ok {
		t.Error("DEFAULT must not be reported as a realm")
	}

	primary := all["primary"].(map[string]any)
	if primary["host"] != "db.example.com" || primary["port"] != "5432" {
		t.Errorf("Expected DEFAULT options to be inherited, got %v", primary)
	}
	if primary["username"] != "alice" {
		t.Errorf("Expected option names to be lower-cased, got %v", primary)
	}

	replica, err := b.Load("replica", nil)
	if err != nil {
		t.Fatalf("Load(replica) failed: %v", err)
	}
	if replica["host"] != "replica.example.com" {
		t.Errorf("Expected section to override DEFAULT, got %v", replica["host"])
	}
	description, _ := replica["description"].(string)
	if !strings.Contains(description, "read only") || !strings.Contains(description, "replica in another region") {
		t.Errorf("Expected multi-line value, got %q", description)
	}
}

func TestINIQuotedValues(t *testing.T) {
	b, err := NewINIBackend(testFile(t, "quotes.ini"))
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}

	data, err := b.Load("quotes", nil)
	if err != nil {
		t.Fatalf("Load(quotes) failed: %v", err)
	}

	// ini.v1 strips surrounding backticks and triple quotes; plain double
	// quotes are kept.
	want := map[string]any{
		"ticked":  "quoted",
		"tripled": "triple",
		"doubled": `"double"`,
		"inner":   "a `b` c",
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("Expected %v, got %v", want, data)
	}
}

func TestINIBroken(t *testing.T) {
	path := testFile(t, "broken.ini")
	b, err := NewINIBackend(path)
	if err != nil {
		t.Fatalf("NewINIBackend failed: %v", err)
	}

	_, err = b.Load("", nil)
	if !errors.Is(err, serrors.ErrParse) {
		t.Fatalf("Expected ErrParse, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to parse '"+path+"'") {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestBackendsImplementInterface(t *testing.T) {
	var _ Backend = (*INIBackend)(nil)
	var _ Backend = (*YAMLBackend)(nil)
}

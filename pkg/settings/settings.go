package settings

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/asokolsky/secretsettings/pkg/backend"
	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

// Constructor builds a backend for a settings file path.
type Constructor func(path string, opts ...backend.Option) (backend.Backend, error)

// NewYAML is the Constructor for backend.YAMLBackend.
func NewYAML(path string, opts ...backend.Option) (backend.Backend, error) {
	return backend.NewYAMLBackend(path, opts...)
}

// NewINI is the Constructor for backend.INIBackend.
func NewINI(path string, opts ...backend.Option) (backend.Backend, error) {
	return backend.NewINIBackend(path, opts...)
}

var byExtension = map[string]Constructor{
	".yaml": NewYAML,
	".yml":  NewYAML,
	".ini":  NewINI,
}

// Candidates are tried in order for paths without a known extension.
var Candidates = []Constructor{NewYAML, NewINI}

// Detect returns a backend for path, chosen by extension or by trying
// Candidates in order.
func Detect(path string, opts ...backend.Option) (backend.Backend, error) {
	if ctor, ok := byExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return ctor(path, opts...)
	}

	var lastErr error
	for _, ctor := range Candidates {
		b, err := ctor(path, opts...)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, serrors.Wrap(serrors.KindUnknownBackend, lastErr, "Failed to identify backend from '%s'", path)
}

// Settings holds a backend and the most recently loaded realm mapping.
// It is not safe for concurrent use; callers serialise Load themselves.
type Settings struct {
	backend backend.Backend
	secrets map[string]any
	loaded  bool
}

// New creates Settings from a path string or a backend.Backend.
func New(source any, opts ...backend.Option) (*Settings, error) {
	switch src := source.(type) {
	case string:
		return NewFromPath(src, opts...)
	case backend.Backend:
		return NewFromBackend(src), nil
	}
	return nil, serrors.New(serrors.KindUnknownBackend, "Failed to identify backend from '%v'", source)
}

// NewFromPath detects the backend for path.
func NewFromPath(path string, opts ...backend.Option) (*Settings, error) {
	b, err := Detect(path, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromBackend(b), nil
}

// NewFromBackend wraps an existing backend.
func NewFromBackend(b backend.Backend) *Settings {
	return &Settings{backend: b}
}

// Backend returns the backend the settings read from.
func (s *Settings) Backend() backend.Backend {
	return s.backend
}

// Load reads realm (all realms if empty) through the backend, decrypting with
// key when it is not nil. A failed load leaves the previous mapping in place.
func (s *Settings) Load(realm string, key []byte) (map[string]any, error) {
	data, err := s.backend.Load(realm, key)
	if err != nil {
		return nil, err
	}
	s.secrets = data
	s.loaded = true
	return data, nil
}

// Loaded reports whether Load has succeeded at least once.
func (s *Settings) Loaded() bool {
	return s.loaded
}

// Secrets returns the most recently loaded mapping, or nil.
func (s *Settings) Secrets() map[string]any {
	return s.secrets
}

// Get returns the value stored under key, or def if there is none.
func (s *Settings) Get(key string, def any) (any, error) {
	if !s.loaded {
		return nil, serrors.New(serrors.KindNotLoaded, "secrets not loaded")
	}
	if v, ok := s.secrets[key]; ok {
		return v, nil
	}
	return def, nil
}

// Value returns the value stored under key and fails if there is none.
func (s *Settings) Value(key string) (any, error) {
	if !s.loaded {
		return nil, serrors.New(serrors.KindNotLoaded, "secrets not loaded")
	}
	v, ok := s.secrets[key]
	if !ok {
		return nil, serrors.New(serrors.KindKeyNotFound, "no such key '%s'", key)
	}
	return v, nil
}

// String is Value formatted as a string.
func (s *Settings) String(key string) (string, error) {
	v, err := s.Value(key)
	if err != nil {
		return "", err
	}
	if str, ok := v.(string); ok {
		return str, nil
	}
	return fmt.Sprint(v), nil
}

package backend

import (
	"fmt"

	"gopkg.in/yaml.v2"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
	"github.com/asokolsky/secretsettings/pkg/secrets"
)

// YAMLBackend loads settings from a YAML file whose top-level keys are realms.
// Scalars follow YAML 1.1, so yes/no and on/off are booleans and 014 is octal.
// The single letters y and n stay strings and mapping keys keep their text.
type YAMLBackend struct {
	FileBackend
}

// NewYAMLBackend locates the YAML settings file at path.
func NewYAMLBackend(path string, opts ...Option) (*YAMLBackend, error) {
	fb, err := NewFileBackend(path, opts...)
	if err != nil {
		return nil, err
	}
	return &YAMLBackend{FileBackend: *fb}, nil
}

// Load implements Backend.
func (b *YAMLBackend) Load(realm string, key []byte) (map[string]any, error) {
	data, err := b.read()
	if err != nil {
		return nil, err
	}

	var root yamlValue
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, serrors.Wrap(serrors.KindParse, err, "Failed to parse '%s': %v", b.path, err)
	}

	doc, ok := root.v.(map[string]any)
	if !ok {
		return nil, serrors.New(serrors.KindShape,
			"YAML secrets should be a dictionary, not %s", describe(root.v))
	}

	if realm == "" {
		b.log.Debugf("Loaded %d top-level entries from %s", len(doc), b.path)
		return secrets.DecryptRealms(doc, key)
	}

	v, ok := doc[realm]
	if !ok {
		return nil, serrors.New(serrors.KindRealmNotFound, "YAML data have no realm '%s'", realm)
	}
	section, ok := v.(map[string]any)
	if !ok {
		return nil, serrors.New(serrors.KindShape,
			"YAML realm '%s' should be a dictionary, not %s", realm, describe(v))
	}
	b.log.Debugf("Loaded realm %s with %d entries from %s", realm, len(section), b.path)
	return secrets.DecryptRealm(section, key)
}

// shortBools are the one-letter spellings yaml.v2 resolves to booleans.
var shortBools = map[string]bool{"y": true, "Y": true, "n": true, "N": true}

// yamlKey is a mapping key decoded as its literal text.
type yamlKey string

func (k *yamlKey) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*k = yamlKey(s)
	return nil
}

// yamlValue holds a decoded node with maps keyed by string.
type yamlValue struct {
	v any
}

func (y *yamlValue) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch raw.(type) {
	case map[any]any:
		var m map[yamlKey]yamlValue
		if err := unmarshal(&m); err != nil {
			return err
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[string(k)] = v.v
		}
		y.v = out
	case []any:
		var items []yamlValue
		if err := unmarshal(&items); err != nil {
			return err
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item.v
		}
		y.v = out
	case bool:
		var text string
		if err := unmarshal(&text); err != nil {
			return err
		}
		if shortBools[text] {
			y.v = text
		} else {
			y.v = raw
		}
	default:
		y.v = raw
	}
	return nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a list"
	case string:
		return "a string"
	case int, int64, uint64:
		return "an integer"
	case float64:
		return "a float"
	case bool:
		return "a boolean"
	}
	return fmt.Sprintf("%T", v)
}

package backend

import (
	"gopkg.in/ini.v1"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
	"github.com/asokolsky/secretsettings/pkg/secrets"
)

// DefaultINIFile is looked up when NewINIBackend is given an empty path.
const DefaultINIFile = "secrets.ini"

// iniLoadOptions: option names are case-insensitive, `#` and `;` inside
// values are kept, indented lines continue the previous value and quotes are
// not stripped.
var iniLoadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	AllowPythonMultilineValues: true,
	PreserveSurroundedQuote:    true,
}

// INIBackend loads settings from an INI file whose sections are realms.
type INIBackend struct {
	FileBackend
}

// NewINIBackend locates the INI settings file at path, or DefaultINIFile if
// path is empty.
func NewINIBackend(path string, opts ...Option) (*INIBackend, error) {
	if path == "" {
		path = DefaultINIFile
	}
	fb, err := NewFileBackend(path, opts...)
	if err != nil {
		return nil, err
	}
	return &INIBackend{FileBackend: *fb}, nil
}

// Load implements Backend. Options of the DEFAULT section are inherited by
// every realm, and DEFAULT is not a realm itself.
func (b *INIBackend) Load(realm string, key []byte) (map[string]any, error) {
	data, err := b.read()
	if err != nil {
		return nil, err
	}

	cfg, err := ini.LoadSources(iniLoadOptions, data)
	if err != nil {
		return nil, serrors.Wrap(serrors.KindParse, err, "Failed to parse '%s': %v", b.path, err)
	}

	if realm == "" {
		doc := make(map[string]any)
		for _, sec := range cfg.Sections() {
			if sec.Name() == ini.DefaultSection {
				continue
			}
			doc[sec.Name()] = sectionOptions(cfg, sec)
		}
		b.log.Debugf("Loaded %d realms from %s", len(doc), b.path)
		return secrets.DecryptRealms(doc, key)
	}

	sec, err := cfg.GetSection(realm)
	if err != nil || realm == ini.DefaultSection {
		return nil, serrors.New(serrors.KindRealmNotFound, "Failed to locate '%s' in '%s'", realm, b.path)
	}
	opts := sectionOptions(cfg, sec)
	b.log.Debugf("Loaded realm %s with %d options from %s", realm, len(opts), b.path)
	return secrets.DecryptRealm(opts, key)
}

func sectionOptions(cfg *ini.File, sec *ini.Section) map[string]any {
	res := make(map[string]any)
	for _, k := range cfg.Section(ini.DefaultSection).Keys() {
		res[k.Name()] = k.Value()
	}
	for _, k := range sec.Keys() {
		res[k.Name()] = k.Value()
	}
	return res
}

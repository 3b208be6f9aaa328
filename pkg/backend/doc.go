// Package backend loads realm mappings from settings files.
//
// A Backend turns a settings file into either one realm (a flat or nested
// mapping) or every realm keyed by name, decrypting `encrypted-` fields when a
// key is given. There are exactly two implementations:
//
//   - INIBackend: sections are realms, options are string values
//   - YAMLBackend: top-level keys are realms, values keep their YAML types
//
// # File Location
//
// Both backends embed a FileBackend, which resolves the file once at
// construction:
//
//   - `~/name` is relative to the user's home directory
//   - `/abs/name`, `./name` and `../name` are used as given
//   - a bare `name` is looked up in the current directory, then in the home
//     directory
//
// WithCheckPermissions(true) additionally rejects files that are readable by
// group or others.
//
// # Realms
//
// Load("", key) returns every realm; Load("name", key) returns one. The empty
// string always means "all realms", so a realm literally named "" cannot be
// requested on its own.
package backend

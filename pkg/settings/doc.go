// Package settings is the entry point for reading decrypted settings.
//
// A Settings value wraps one backend.Backend and remembers the realm it loaded
// last:
//
//	s, err := settings.NewFromPath("~/.myapp/secrets.ini")
//	if err != nil {
//		return err
//	}
//	if _, err := s.Load("secrets", nil); err != nil {
//		return err
//	}
//	key, err := s.String("key")
//	if err != nil {
//		return err
//	}
//	if _, err := s.Load("database", []byte(key)); err != nil {
//		return err
//	}
//	password, err := s.Value("password")
//
// # Backend Detection
//
// NewFromPath picks the backend from the file extension: `.yaml` and `.yml`
// select YAML, `.ini` selects INI. Any other name is tried as YAML and then as
// INI, and the first backend that finds the file wins.
package settings

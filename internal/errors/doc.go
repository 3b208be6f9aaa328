// Package errors provides sentinel errors for the secretsettings CLI.
//
// Library failures (file not found, bad key length, decryption failures and
// so on) come from pkg/errors. This package only covers problems with how the
// CLI was invoked or configured.
//
// # Error Categories
//
//   - Input errors: missing or empty key and plaintext input
//   - Config errors: unusable config values or location
//
// # Usage
//
//	if len(key) == 0 {
//	    return errors.ErrEmptyKey
//	}
//
// Handle errors in the CLI layer with errors.Is:
//
//	if errors.Is(err, cerrors.ErrNotATerminal) {
//	    // suggest piping the key instead
//	}
package errors

// Package errors provides the error taxonomy for secretsettings.
//
// Every failure returned by the library is an *Error carrying a Kind and the
// message shown to the user. Each Kind also has a sentinel value so callers
// can use errors.Is() rather than matching strings.
//
// # Error Categories
//
// Kinds are split into two groups:
//
//   - Backend errors: the settings file could not be located, was too
//     permissive, could not be parsed, had the wrong shape, or did not contain
//     the requested realm (ErrFileNotFound, ErrPermissions, ErrParse, ErrShape,
//     ErrRealmNotFound, ErrUnknownBackend)
//   - Library errors: key and decryption failures and facade misuse
//     (ErrKeyLength, ErrMalformedKey, ErrDecrypt, ErrNotLoaded, ErrKeyNotFound)
//
// Use IsBackend() to tell the two groups apart.
//
// # Usage
//
//	settings, err := settings.New("secrets.ini")
//	if errors.Is(err, serrors.ErrFileNotFound) {
//	    // Show user-friendly message
//	}
//
// The message of an *Error is exactly what Error() returns; the underlying
// cause, if any, stays reachable through errors.Unwrap.
package errors

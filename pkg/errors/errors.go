package errors

import (
	"errors"
	"fmt"
)

// Kind discriminates the failures the library can report.
type Kind int

const (
	KindGeneric Kind = iota
	KindNotFound
	KindPermission
	KindParse
	KindShape
	KindRealmNotFound
	KindUnknownBackend
	KindKeyLength
	KindMalformedKey
	KindDecrypt
	KindNotLoaded
	KindKeyNotFound
)

// Backend errors indicate the settings file could not be turned into a realm mapping.
var (
	// ErrFileNotFound indicates the settings file was not found in any search location.
	ErrFileNotFound = errors.New("settings file not found")

	// ErrPermissions indicates the settings file is readable by group or others.
	ErrPermissions = errors.New("settings file is too permissive")

	// ErrParse indicates the settings file content is malformed.
	ErrParse = errors.New("failed to parse settings file")

	// ErrShape indicates the parsed document is not a mapping.
	ErrShape = errors.New("settings document is not a mapping")

	// ErrRealmNotFound indicates the requested realm is absent from the document.
	ErrRealmNotFound = errors.New("realm not found")

	// ErrUnknownBackend indicates no backend could be chosen for the given input.
	ErrUnknownBackend = errors.New("failed to identify backend")
)

// Cryptographic errors indicate failures while decrypting tagged fields.
var (
	// ErrKeyLength indicates the symmetric key is not 16, 24 or 32 bytes long.
	ErrKeyLength = errors.New("invalid symmetric key length")

	// ErrMalformedKey indicates an encrypted- key with nothing after the prefix.
	ErrMalformedKey = errors.New("malformed encrypted key")

	// ErrDecrypt indicates a ciphertext could not be decoded or decrypted.
	ErrDecrypt = errors.New("failed to decrypt value")
)

// Facade errors indicate misuse of the loaded settings.
var (
	// ErrNotLoaded indicates settings were queried before any successful load.
	ErrNotLoaded = errors.New("secrets not loaded")

	// ErrKeyNotFound indicates the loaded realm has no such key.
	ErrKeyNotFound = errors.New("key not found")
)

var sentinels = map[Kind]error{
	KindNotFound:       ErrFileNotFound,
	KindPermission:     ErrPermissions,
	KindParse:          ErrParse,
	KindShape:          ErrShape,
	KindRealmNotFound:  ErrRealmNotFound,
	KindUnknownBackend: ErrUnknownBackend,
	KindKeyLength:      ErrKeyLength,
	KindMalformedKey:   ErrMalformedKey,
	KindDecrypt:        ErrDecrypt,
	KindNotLoaded:      ErrNotLoaded,
	KindKeyNotFound:    ErrKeyNotFound,
}

// Error is the error type returned by every secretsettings package.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New returns an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error of the given kind that keeps err as its cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes both the kind's sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	var errs []error
	if sentinel, ok := sentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Backend reports whether the error came from locating or parsing a settings file.
func (e *Error) Backend() bool {
	switch e.Kind {
	case KindNotFound, KindPermission, KindParse, KindShape, KindRealmNotFound, KindUnknownBackend:
		return true
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or KindGeneric.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneric
}

// IsBackend reports whether err carries a backend-specific *Error.
func IsBackend(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Backend()
}

package errors

import "errors"

// Input errors indicate a problem with what the user supplied.
var (
	// ErrEmptyKey indicates the encryption key read from the user is empty.
	ErrEmptyKey = errors.New("key is empty")

	// ErrEmptyInput indicates no plaintext was supplied to encrypt.
	ErrEmptyInput = errors.New("nothing to encrypt")

	// ErrNotATerminal indicates a prompt was needed but stdin is neither a
	// terminal nor carries any input.
	ErrNotATerminal = errors.New("stdin is not a terminal and has no input")

	// ErrKeyFlagsConflict indicates --key was combined with --key-realm.
	ErrKeyFlagsConflict = errors.New("--key and --key-realm cannot be used together")
)

// Config errors indicate an unusable CLI configuration.
var (
	// ErrInvalidOutput indicates an unsupported output format.
	ErrInvalidOutput = errors.New("output format must be yaml or json")

	// ErrNoConfigDir indicates the user config directory could not be determined.
	ErrNoConfigDir = errors.New("cannot determine the user config directory")

	// ErrConfigExists indicates config init would overwrite an existing file.
	ErrConfigExists = errors.New("config file already exists")
)

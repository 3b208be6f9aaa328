// Package logger provides leveled, colored logging for the secretsettings CLI.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages, including the traces emitted by
//     the settings backends
//
// Warnings and errors are always shown.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loading realm %s", realm)
//
// Logger satisfies backend.Logger, so it can be handed to the library with
// backend.WithLogger. Output goes to standard error so that command output on
// standard out can be piped.
//
// Never log key material or settings values.
package logger

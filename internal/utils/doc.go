// Package utils provides input helpers for the secretsettings CLI.
//
// # Terminal Utilities
//
//   - ReadSecret: prompts without echo on a terminal, otherwise reads one line
//   - IsTerminal: reports whether a reader is an interactive terminal
//
// # I/O Utilities
//
//   - ReadLine: reads the first line of a reader without its line ending
//   - ReadInput: reads all of a reader, trimming one trailing line ending
//
// # String Utilities
//
//   - FormatList: renders names as an indented bullet list
//   - SortedKeys: returns the keys of a mapping in sorted order
package utils

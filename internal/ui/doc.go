// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content by its role rather than by color:
//
//	ui.Code.Sprint("secretsettings config init") // commands
//	ui.Path.Sprint("~/.config/secretsettings")   // file paths
//	ui.Realm.Sprint("database")                  // realm and setting names
//	ui.Success.Sprint("✓")                       // success markers
//	ui.Error.Sprint("✗")                         // failure markers
//	ui.Hint.Sprint("→")                          // follow-up hints
//	ui.Muted.Sprint("not set")                   // secondary text
//
// # Color Behavior
//
// Colors are disabled when NO_COLOR is set or fatih/color decides the output
// is not a color terminal. Formatters then fall back to plain decorations:
// `backticks` for Code, 'quotes' for Realm and (parentheses) for Muted.
package ui

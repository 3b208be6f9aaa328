package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders text in color, or with a plain prefix and suffix when
// colors are disabled.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

// EnsureNewline appends a newline unless s already ends with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// Failure renders a failed step followed by its error.
func Failure(msg string, err error) string {
	out := Error.Sprint("✗") + " " + msg
	if err != nil {
		out += "\n" + Error.Sprint("Error: ") + err.Error()
	}
	return out
}

// Done renders a completed step.
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	Code    = Formatter{color.New(color.FgYellow), "`", "`"}
	Path    = Formatter{color.New(color.FgYellow), "", ""}
	Realm   = Formatter{color.New(color.FgCyan), "'", "'"}
	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Hint    = Formatter{color.New(color.FgCyan), "", ""}
	Muted   = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

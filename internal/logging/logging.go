package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool

	// Writer receives all messages. Nil means os.Stderr.
	Writer io.Writer
}

func (l Logger) out() io.Writer {
	if l.Writer != nil {
		return l.Writer
	}
	return os.Stderr
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(l.out(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.out(), color.RedString("[error] ")+msg+"\n", args...)
}

// ErrorfAndReturn logs at debug level and returns the formatted error, for
// RunE functions that hand the error back to cobra.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	if l.Debug {
		fmt.Fprintf(l.out(), color.RedString("[error] ")+"%v\n", err)
	}
	return err
}

package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/asokolsky/secretsettings/internal/errors"
)

// IsTerminal reports whether r is a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ReadSecret reads a secret from in. On a terminal the prompt is written to
// promptOut and input is not echoed; otherwise the first line of in is used,
// so keys can be piped in. The returned secret is never empty. Input that is
// neither a terminal nor carries any data yields ErrNotATerminal.
func ReadSecret(prompt string, in io.Reader, promptOut io.Writer) ([]byte, error) {
	var secret []byte

	if IsTerminal(in) {
		fd := int(in.(*os.File).Fd())
		fmt.Fprint(promptOut, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(promptOut) // Add newline after hidden input
		if err != nil {
			return nil, fmt.Errorf("failed to read from terminal: %w", err)
		}
		secret = b
	} else {
		line, read, err := readLine(in)
		if err != nil {
			return nil, err
		}
		if !read {
			return nil, errors.ErrNotATerminal
		}
		secret = []byte(line)
	}

	if len(secret) == 0 {
		return nil, errors.ErrEmptyKey
	}
	return secret, nil
}

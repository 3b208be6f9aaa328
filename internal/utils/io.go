package utils

import (
	"fmt"
	"io"
	"strings"
)

// ReadLine returns the first line of r without its line ending. An input
// without any newline is returned whole. It reads byte by byte, so whatever
// follows the line is left in r for the next reader.
func ReadLine(r io.Reader) (string, error) {
	line, _, err := readLine(r)
	return line, err
}

// readLine is ReadLine that also reports whether r had any input at all.
func readLine(r io.Reader) (string, bool, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	read := false
	for {
		n, err := r.Read(buf)
		if n > 0 {
			read = true
			if buf[0] == '\n' {
				break
			}
			b.WriteByte(buf[0])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", read, fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimSuffix(b.String(), "\r"), read, nil
}

// ReadInput returns everything in r, minus one trailing line ending.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

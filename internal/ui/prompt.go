package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when no password was provided
var ErrNoInput = errors.New("no password provided")

// ReadPassword reads a password from stdin. On a terminal the prompt is
// written to stderr and typing is not echoed; otherwise the first line of
// stdin is used.
func ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return nonEmpty(string(b))
	}
	return ReadPasswordFrom(os.Stdin)
}

// ReadPasswordFrom reads the first line of r as a password.
// The trailing newline is stripped; other whitespace is kept.
func ReadPasswordFrom(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return nonEmpty(line)
}

func nonEmpty(s string) (string, error) {
	if s == "" {
		return "", ErrNoInput
	}
	return s, nil
}

// Package clipboard copies text to the system clipboard.
//
// A failed copy is a normal outcome: the platform may have no clipboard
// utility installed (xclip, xsel, wl-copy, pbcopy) or may refuse access.
// Callers receive a *Error and decide how to tell the user.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when asked to copy an empty string
var ErrEmpty = errors.New("nothing to copy")

// ErrUnsupported is returned when no clipboard backend is available
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Error reports a failed copy
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("clipboard: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Service copies text to a clipboard
type Service interface {
	CopyText(text string) error
}

// Func adapts a plain function to Service
type Func func(text string) error

// CopyText calls f and wraps any failure in *Error
func (f Func) CopyText(text string) error {
	if text == "" {
		return &Error{Err: ErrEmpty}
	}
	if err := f(text); err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			return ce
		}
		return &Error{Err: err}
	}
	return nil
}

// System is the Service backed by the operating system clipboard
var System Service = Func(func(text string) error { return writeAll(text) })

// writeAll is swapped in tests
var writeAll = func(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// IsClipboardError reports whether err came from a failed copy
func IsClipboardError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

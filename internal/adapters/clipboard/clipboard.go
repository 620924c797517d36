// Package clipboard copies transcripts to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"streetinterview/internal/ports"
)

// ErrUnsupported is returned when no clipboard utility is installed
var ErrUnsupported = errors.New("clipboard unavailable (install xclip, xsel or wl-clipboard)")

// System writes to the OS clipboard
type System struct{}

var _ ports.Clipboard = System{}

// New returns the system clipboard
func New() System {
	return System{}
}

// Available reports whether a clipboard utility was found
func (System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents
func (s System) WriteAll(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

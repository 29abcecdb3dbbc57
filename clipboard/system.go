package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System stores values on the host clipboard. The host clipboard has a
// single slot, so keys are ignored: every Set replaces the clipboard text.
type System struct{}

// NewSystem returns a store backed by the host clipboard.
func NewSystem() *System {
	return &System{}
}

// Unsupported reports whether the host has no usable clipboard (for example
// a Linux box without xclip, xsel or wl-clipboard).
func (*System) Unsupported() bool {
	return clipboard.Unsupported
}

// Get returns the clipboard text. An empty clipboard reports ok == false.
func (*System) Get(string) (string, bool, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false, fmt.Errorf("clipboard: read: %w", err)
	}
	return text, text != "", nil
}

// Set replaces the clipboard text with value.
func (*System) Set(_, value string) error {
	if err := clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}

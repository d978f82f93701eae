// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal returns true if stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// LeftMargin returns the padding that centers content of the given width in a
// line of lineWidth, never negative
func LeftMargin(lineWidth, contentWidth int) int {
	if contentWidth >= lineWidth {
		return 0
	}
	return (lineWidth - contentWidth) / 2
}

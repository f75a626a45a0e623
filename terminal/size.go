package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the dimensions of the terminal behind f
// ok is false when f is not a terminal or cannot be queried
func Size(f *os.File) (width, height int, ok bool) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

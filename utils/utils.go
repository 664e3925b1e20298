package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the file is attached to a terminal.
// Spinners and colors are only worth drawing in that case.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

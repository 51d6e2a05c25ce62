package styles

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

// TerminalWidth returns the column count of f, or DefaultWidth
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(f.Fd()) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

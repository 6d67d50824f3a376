package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Styles struct {
	Error lipgloss.Style
	Hint  lipgloss.Style
}

// NewStyles returns styles rendered for w. Colors are dropped automatically
// when w is not a terminal.
func NewStyles(w io.Writer) Styles {
	base := lipgloss.NewRenderer(w).NewStyle()
	return Styles{
		Error: base.Foreground(lipgloss.Color("#EF4444")),
		Hint:  base.Faint(true),
	}
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

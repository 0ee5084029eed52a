package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + the panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	SymOK, SymFail, SymPin, SymTop, SymMore       string
}

var current = themeFor("classic")

// SetTheme switches the palette and rebuilds the shared styles.
func SetTheme(name string) {
	current = themeFor(name)
	rebuildStyles()
}

// Expose what renderers need
func Current() Theme { return current }

func themeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
			SymOK: "✔", SymFail: "✖", SymPin: "◆", SymTop: "⇡", SymMore: "⇣",
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Pending: lipgloss.NoColor{},
			Border: lipgloss.ASCIIBorder(), BorderColor: lipgloss.NoColor{},
			SymOK: "ok", SymFail: "x", SymPin: "*", SymTop: "^", SymMore: "v",
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			SymOK: "✔", SymFail: "✖", SymPin: "📌", SymTop: "↑", SymMore: "↓",
		}
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelString frames inner with the current theme's border.
func PanelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Fprintln(Out, PanelString(strings.Join(lines, "\n")))
}

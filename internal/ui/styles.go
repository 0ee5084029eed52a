package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	TitleStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	PendingStyle lipgloss.Style
	AccentStyle  lipgloss.Style
	MutedStyle   lipgloss.Style
	ErrorStyle   lipgloss.Style
	HelpStyle    lipgloss.Style
	ButtonStyle  lipgloss.Style
)

func init() { rebuildStyles() }

func rebuildStyles() {
	t := current
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Title)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	PendingStyle = lipgloss.NewStyle().Foreground(t.Pending)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	MutedStyle = lipgloss.NewStyle().Faint(true).Foreground(t.Muted)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	HelpStyle = lipgloss.NewStyle().Faint(true)
	ButtonStyle = lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.Accent).
		Padding(0, 2)
}

// Out and Err are where OK and Fail write.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

func OK(msg string) {
	fmt.Fprintln(Out, SuccessStyle.Render(current.SymOK+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(Err, ErrorStyle.Render(current.SymFail+" "+msg))
}

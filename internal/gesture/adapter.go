package gesture

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RefreshRequestedMsg asks the list to reset and reload.
type RefreshRequestedMsg struct{}

// Refresh is a tea.Cmd emitting RefreshRequestedMsg.
func Refresh() tea.Msg { return RefreshRequestedMsg{} }

var (
	pullStyle    = lipgloss.NewStyle().Faint(true)
	refreshStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Adapter exposes a Recognizer as a refresh trigger on narrow viewports.
type Adapter struct {
	Recognizer Recognizer
	// Breakpoint is the first width at which the gesture is off.
	Breakpoint int
}

// NewAdapter returns an adapter active below breakpoint columns.
func NewAdapter(breakpoint, threshold int) Adapter {
	return Adapter{Recognizer: Recognizer{Threshold: threshold}, Breakpoint: breakpoint}
}

// Enabled reports whether pull-to-refresh is available at width.
func (a *Adapter) Enabled(width int) bool {
	return a.Breakpoint > 0 && width < a.Breakpoint
}

// Update feeds input to the recognizer. It returns Refresh when a pull
// completes.
func (a *Adapter) Update(msg tea.Msg, width int, atTop bool) tea.Cmd {
	if !a.Enabled(width) {
		a.Recognizer.Release()
		return nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			if a.Recognizer.Pull(atTop) {
				return Refresh
			}
		case msg.Button == tea.MouseButtonWheelDown, msg.Action == tea.MouseActionPress:
			a.Recognizer.Release()
		}
	case tea.KeyMsg:
		a.Recognizer.Release()
	}
	return nil
}

// Settle is called once the refresh has completed.
func (a *Adapter) Settle() { a.Recognizer.Settle() }

// View renders the pulling or refreshing indicator, or nothing.
func (a *Adapter) View(width int, spinner string) string {
	if !a.Enabled(width) {
		return ""
	}
	var s string
	switch a.Recognizer.Phase() {
	case Pulling:
		n := a.Recognizer.threshold()
		d := a.Recognizer.Distance()
		s = pullStyle.Render("↓ pull to refresh " + strings.Repeat("●", d) + strings.Repeat("○", n-d))
	case Refreshing:
		s = refreshStyle.Render(spinner + " refreshing")
	default:
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

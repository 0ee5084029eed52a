package surface

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/pagedlist/internal/render"
	"github.com/idilsaglam/pagedlist/internal/ui"
)

const headerHeight = 1

var emptyStyle = lipgloss.NewStyle().Italic(true).Faint(true)

// sync re-renders the list content and fits the viewport into the space left
// by header and footer. Called after every state change.
func (m *Model) sync() {
	cw := m.tracker.ContainerWidth()
	if cw <= 0 {
		cw = m.width
	}
	footer := 2 // floating control + help
	if m.gesture.Enabled(m.width) {
		footer++
	}
	if m.editing {
		footer++
	}
	m.vp.Width = cw
	m.vp.Height = max(m.height-headerHeight-footer, 1)
	m.vp.SetContent(m.content(cw))
}

// content is the scrollable body: items, then the loading indicator, the
// load-more button, the empty state and the last error as they apply.
func (m *Model) content(width int) string {
	var sections []string
	items := m.items()
	if len(items) > 0 {
		sections = append(sections, render.Block(items, width, m.opts.Renderer))
	}

	m.moreLine = -1
	switch {
	case m.ctrl.Loading():
		sections = append(sections, center(width, m.spinner.View()+" loading"))
	case m.ctrl.LoadMoreVisible():
		m.moreLine = lineCount(sections) + 1
		btn := ui.ButtonStyle.Render("Load more " + ui.Current().SymMore)
		sections = append(sections, "\n"+center(width, btn))
	case m.ctrl.EmptyVisible():
		sections = append(sections, "\n"+center(width, emptyStyle.Render("∅  No data")))
	}

	if err := m.ctrl.Err(); err != nil && !m.ctrl.Loading() {
		hint := "change the filter to retry"
		if m.ctrl.LoadMoreVisible() {
			hint = "press m to retry"
		} else if m.gesture.Enabled(m.width) {
			hint = "pull down to retry"
		}
		msg := fmt.Sprintf("couldn't load memos: %v (%s)", err, hint)
		sections = append(sections, ui.MutedStyle.Render(ansi.Truncate(msg, width, "…")))
	}
	return strings.Join(sections, "\n")
}

// onLoadMore reports whether screen row y hits the load-more button.
func (m Model) onLoadMore(y int) bool {
	if m.moreLine < 0 || !m.ctrl.LoadMoreVisible() {
		return false
	}
	row := y - headerHeight - m.gestureLines() + m.vp.YOffset
	return row >= m.moreLine && row < m.moreLine+3
}

func (m Model) gestureLines() int {
	if m.gesture.Enabled(m.width) {
		return 1
	}
	return 0
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	if m.gesture.Enabled(m.width) {
		b.WriteString(m.gesture.View(m.width, m.spinner.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.ti.View())
		b.WriteString("\n")
	}
	b.WriteString(m.floatingLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) headerView() string {
	cfg := m.ctrl.Config()
	parts := []string{ui.TitleStyle.Render(m.opts.Title)}
	if cfg.Filter != "" {
		parts = append(parts, ui.AccentStyle.Render(cfg.Filter))
	}
	parts = append(parts, ui.MutedStyle.Render(fmt.Sprintf("%d items · %d/page", len(m.ctrl.Items()), cfg.PageSize)))
	if m.stats != nil {
		if avg := m.stats.AvgLatency().Round(100 * time.Microsecond); avg > 0 {
			parts = append(parts, ui.MutedStyle.Render("avg "+avg.String()))
		}
	}
	return ansi.Truncate(strings.Join(parts, ui.MutedStyle.Render(" · ")), m.width, "…")
}

// floatingLine places the scroll-to-top control one column left of the
// container's right gap, or returns a blank line.
func (m Model) floatingLine() string {
	if !m.scrollToTopVisible() {
		return ""
	}
	label := ui.AccentStyle.Render(ui.Current().SymTop + " top")
	right := 1 + m.tracker.Offset()
	pad := m.width - right - ansi.StringWidth(label)
	if pad < 0 {
		return label
	}
	return strings.Repeat(" ", pad) + label
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func lineCount(sections []string) int {
	if len(sections) == 0 {
		return 0
	}
	return strings.Count(strings.Join(sections, "\n"), "\n") + 1
}

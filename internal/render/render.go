// Package render turns memos into terminal text for the list surface.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/pagedlist/internal/model"
	"github.com/idilsaglam/pagedlist/internal/ui"
)

// Func renders one item for a container width.
type Func func(it model.Item, width int) string

const timeLayout = "2006-01-02 15:04"

// Plain renders a header line, the wrapped content and the tags.
func Plain(it model.Item, width int) string {
	if width < 10 {
		width = 10
	}
	return strings.Join([]string{header(it, width), wrap(it.Content, width), tagLine(it, width)}, "\n")
}

// header is "pin date · @creator". When that does not fit, the creator moves
// to a line of its own so narrow containers still show who wrote the memo.
func header(it model.Item, width int) string {
	var date, creator string
	if !it.CreateTime.IsZero() {
		date = it.CreateTime.Local().Format(timeLayout)
	}
	if it.Creator != "" {
		creator = "@" + it.Creator
	}
	pin := ""
	if it.Pinned {
		pin = ui.PendingStyle.Render(ui.Current().SymPin) + " "
	}

	joined := date
	if date != "" && creator != "" {
		joined += " · "
	}
	joined += creator
	if h := pin + ui.MutedStyle.Render(joined); ansi.StringWidth(h) <= width || date == "" || creator == "" {
		return ansi.Truncate(h, width, "…")
	}
	return ansi.Truncate(pin+ui.MutedStyle.Render(date), width, "…") + "\n" +
		ansi.Truncate(ui.MutedStyle.Render(creator), width, "…")
}

func wrap(content string, width int) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return ui.MutedStyle.Render("(empty)")
	}
	return ansi.Wordwrap(content, width, "")
}

func tagLine(it model.Item, width int) string {
	if len(it.Tags) == 0 {
		return ""
	}
	tags := make([]string, 0, len(it.Tags))
	for _, t := range it.Tags {
		tags = append(tags, "#"+t)
	}
	return ansi.Truncate(ui.AccentStyle.Render(strings.Join(tags, " ")), width, "…")
}

// Separator is placed between rendered items.
func Separator(width int) string {
	return ui.MutedStyle.Render(strings.Repeat("─", max(width, 0)))
}

// ByName picks a renderer from configuration.
func ByName(name, style string) (Func, error) {
	switch strings.ToLower(name) {
	case "", "plain":
		return Plain, nil
	case "markdown", "md":
		return NewMarkdown(style).Render, nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want plain or markdown)", name)
}

// Block joins rendered items with separators, trimming trailing blank lines.
func Block(items []model.Item, width int, fn Func) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n" + Separator(width) + "\n")
		}
		b.WriteString(strings.TrimRight(fn(it, width), "\n"))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

package render

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// Markdown renders memo content with glamour. Output is cached per content
// and width; rendering is only called from the update loop.
type Markdown struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[uint64]string
}

// NewMarkdown uses a glamour standard style ("dark", "light", "notty", ...).
func NewMarkdown(style string) *Markdown {
	if style == "" {
		style = "dark"
	}
	return &Markdown{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[uint64]string),
	}
}

// Render implements Func. It falls back to Plain if glamour fails.
func (m *Markdown) Render(it model.Item, width int) string {
	if width < 10 {
		width = 10
	}
	key := xxhash.Sum64String(strconv.Itoa(width) + "\x00" + it.Content)
	body, ok := m.cache[key]
	if !ok {
		r, err := m.renderer(width)
		if err != nil {
			return Plain(it, width)
		}
		out, err := r.Render(it.Content)
		if err != nil {
			return Plain(it, width)
		}
		body = strings.Trim(out, "\n")
		m.cache[key] = body
	}
	return strings.Join([]string{header(it, width), body, tagLine(it, width)}, "\n")
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}

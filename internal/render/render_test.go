package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/pagedlist/internal/model"
)

func TestPlain_ContainsContentAndTags(t *testing.T) {
	it := model.Item{
		Content:    "buy milk and bread before the shop closes",
		Tags:       []string{"home", "todo"},
		Creator:    "ann",
		Pinned:     true,
		CreateTime: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
	out := Plain(it, 20)
	assert.Contains(t, out, "@ann")
	assert.Contains(t, out, "#home #todo")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20, line)
	}
}

func TestHeader_CreatorSurvivesNarrowWidths(t *testing.T) {
	it := model.Item{
		Creator:    "ann",
		Pinned:     true,
		CreateTime: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	wide := header(it, 60)
	assert.NotContains(t, wide, "\n")
	assert.Contains(t, wide, "@ann")

	for _, width := range []int{10, 16, 20, 24} {
		h := header(it, width)
		assert.Contains(t, h, "@ann", "width %d", width)
		for _, line := range strings.Split(h, "\n") {
			assert.LessOrEqual(t, ansi.StringWidth(line), width, line)
		}
	}

	assert.Equal(t, "@ann", ansi.Strip(header(model.Item{Creator: "ann"}, 10)))
}

func TestPlain_EmptyContent(t *testing.T) {
	assert.Contains(t, Plain(model.Item{}, 40), "(empty)")
}

func TestMarkdown_RendersAndCaches(t *testing.T) {
	md := NewMarkdown("notty")
	it := model.Item{Content: "# Title\n\nsome **bold** text"}

	first := md.Render(it, 40)
	require.Contains(t, first, "Title")
	require.Contains(t, first, "bold")
	require.Len(t, md.cache, 1)

	require.Equal(t, first, md.Render(it, 40))
	require.Len(t, md.cache, 1)

	md.Render(it, 50)
	require.Len(t, md.cache, 2)
	require.Len(t, md.renderers, 2)
}

func TestByName(t *testing.T) {
	fn, err := ByName("", "")
	require.NoError(t, err)
	require.NotNil(t, fn)

	_, err = ByName("markdown", "notty")
	require.NoError(t, err)

	_, err = ByName("html", "")
	require.Error(t, err)
}

func TestSorts(t *testing.T) {
	now := time.Now()
	items := []model.Item{
		{ID: "a", CreateTime: now.Add(-2 * time.Hour)},
		{ID: "b", Pinned: true, CreateTime: now.Add(-3 * time.Hour)},
		{ID: "c", CreateTime: now},
	}

	assert.Equal(t, []string{"b", "a", "c"}, ids(PinnedFirst(items)))
	assert.Equal(t, []string{"c", "a", "b"}, ids(NewestFirst(items)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(items), "input untouched")

	fn, err := SortByName("none")
	require.NoError(t, err)
	require.Nil(t, fn)
	_, err = SortByName("random")
	require.Error(t, err)
}

func TestBlock_SeparatesItems(t *testing.T) {
	items := []model.Item{{Content: "one"}, {Content: "two"}}
	out := Block(items, 30, Plain)
	require.Contains(t, out, "one")
	require.Contains(t, out, "two")
	require.Contains(t, out, "───")
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

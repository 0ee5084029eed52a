package store

import (
	"strings"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// Filter is the parsed form of the filter string the local sources accept:
//
//	tag:<name>      item carries the tag
//	creator:<name>  item was written by name
//	pinned          pinned items only
//	archived        archived items instead of normal ones
//	<word>          content contains word (case-insensitive)
type Filter struct {
	Tags     []string
	Creator  string
	Pinned   bool
	Archived bool
	Words    []string
}

// ParseFilter never fails; unknown terms are content words.
func ParseFilter(s string) Filter {
	var f Filter
	for _, term := range strings.Fields(s) {
		lower := strings.ToLower(term)
		switch {
		case strings.HasPrefix(lower, "tag:") && len(term) > 4:
			f.Tags = append(f.Tags, term[4:])
		case strings.HasPrefix(lower, "creator:") && len(term) > 8:
			f.Creator = term[8:]
		case lower == "pinned":
			f.Pinned = true
		case lower == "archived":
			f.Archived = true
		default:
			f.Words = append(f.Words, lower)
		}
	}
	return f
}

// Match reports whether it passes the filter.
func (f Filter) Match(it model.Item) bool {
	if it.Archived != f.Archived {
		return false
	}
	if f.Pinned && !it.Pinned {
		return false
	}
	if f.Creator != "" && !strings.EqualFold(it.Creator, f.Creator) {
		return false
	}
	for _, t := range f.Tags {
		if !it.HasTag(t) {
			return false
		}
	}
	content := strings.ToLower(it.Content)
	for _, w := range f.Words {
		if !strings.Contains(content, w) {
			return false
		}
	}
	return true
}

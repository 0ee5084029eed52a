package model

import (
	"strings"
	"time"
)

// Item is the domain model for a memo entry.
// The list core treats it as opaque; identity is ID.
type Item struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags,omitempty"`
	Pinned     bool      `json:"pinned,omitempty"`
	Archived   bool      `json:"archived,omitempty"`
	Creator    string    `json:"creator,omitempty"`
	CreateTime time.Time `json:"createTime"`
}

// HasTag reports whether the item carries tag (case-insensitive).
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Snippet returns the first line of the content, cut to max runes.
func (it Item) Snippet(max int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(it.Content), "\n")
	r := []rune(line)
	if max > 3 && len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return line
}

package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// SortFunc orders the collection before rendering. It must not modify its
// input.
type SortFunc func([]model.Item) []model.Item

// PinnedFirst moves pinned items to the front, keeping arrival order.
func PinnedFirst(items []model.Item) []model.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		switch {
		case a.Pinned == b.Pinned:
			return 0
		case a.Pinned:
			return -1
		default:
			return 1
		}
	})
	return out
}

// NewestFirst orders by creation time, newest first.
func NewestFirst(items []model.Item) []model.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return b.CreateTime.Compare(a.CreateTime)
	})
	return out
}

// SortByName picks a sort from configuration; "" and "none" mean arrival order.
func SortByName(name string) (SortFunc, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "pinned":
		return PinnedFirst, nil
	case "newest":
		return NewestFirst, nil
	}
	return nil, fmt.Errorf("unknown list sort %q (want none, pinned or newest)", name)
}

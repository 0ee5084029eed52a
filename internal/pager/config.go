package pager

import "github.com/idilsaglam/pagedlist/internal/model"

// Config is what the caller of a list surface controls.
type Config struct {
	Filter   string
	PageSize int
}

// Normalize fills in the default page size.
func (c Config) Normalize() Config {
	if c.PageSize <= 0 {
		c.PageSize = model.DefaultPageSize
	}
	return c
}

// Action is the result of a config transition.
type Action int

const (
	// ActionNone keeps the loaded pages.
	ActionNone Action = iota
	// ActionReset drops the loaded pages and reloads from the first page.
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// OnConfigChange decides what a config change requires. Only the filter and
// the page size invalidate the loaded pages.
func OnConfigChange(old, new Config) Action {
	old, new = old.Normalize(), new.Normalize()
	if old.Filter != new.Filter || old.PageSize != new.PageSize {
		return ActionReset
	}
	return ActionNone
}

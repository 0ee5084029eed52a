package store

import (
	"sync"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// Collection is the ordered item list shared by every list surface that
// was handed the same instance. It is safe for concurrent use; a page is
// appended under one lock so readers never see half of it.
type Collection struct {
	mu      sync.RWMutex
	items   []model.Item
	index   map[string]int
	version uint64
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{index: make(map[string]int)}
}

// Append adds items in arrival order. An item whose ID is already present
// replaces the stored one in place.
func (c *Collection) Append(items ...model.Item) {
	if len(items) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range items {
		if it.ID != "" {
			if i, ok := c.index[it.ID]; ok {
				c.items[i] = it
				continue
			}
			c.index[it.ID] = len(c.items)
		}
		c.items = append(c.items, it)
	}
	c.version++
}

// Reset empties the collection.
func (c *Collection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.index = make(map[string]int)
	c.version++
}

// Items returns a snapshot of the current items.
func (c *Collection) Items() []model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version increases on every mutation.
func (c *Collection) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// Source is a paginated data source. ListPage must not touch any shared
// collection; committing a page is the proxy's job.
type Source interface {
	ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, req model.PageRequest) (model.PageResponse, error)

func (f SourceFunc) ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	return f(ctx, req)
}

// MemorySource pages an in-memory slice, newest first.
type MemorySource struct {
	mu    sync.RWMutex
	items []model.Item
}

// NewMemorySource copies items and orders them newest first.
func NewMemorySource(items []model.Item) *MemorySource {
	s := &MemorySource{}
	s.Replace(items)
	return s
}

// Replace swaps the backing items.
func (s *MemorySource) Replace(items []model.Item) {
	sorted := slices.Clone(items)
	SortNewestFirst(sorted)
	s.mu.Lock()
	s.items = sorted
	s.mu.Unlock()
}

// ListPage implements Source.
func (s *MemorySource) ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	if err := ctx.Err(); err != nil {
		return model.PageResponse{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Paginate(s.items, req)
}

// Paginate filters items and cuts the page the request's cursor points at.
func Paginate(items []model.Item, req model.PageRequest) (model.PageResponse, error) {
	if err := req.Validate(); err != nil {
		return model.PageResponse{}, err
	}
	offset, err := DecodeCursor(req.PageToken)
	if err != nil {
		return model.PageResponse{}, err
	}
	f := ParseFilter(req.Filter)
	matched := make([]model.Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			matched = append(matched, it)
		}
	}
	if offset >= len(matched) {
		return model.PageResponse{Items: []model.Item{}}, nil
	}
	end := min(offset+req.PageSize, len(matched))
	resp := model.PageResponse{Items: slices.Clone(matched[offset:end])}
	if end < len(matched) {
		resp.NextPageToken = EncodeCursor(end)
	}
	return resp, nil
}

// SortNewestFirst orders items by creation time, newest first.
func SortNewestFirst(items []model.Item) {
	slices.SortStableFunc(items, func(a, b model.Item) int {
		return b.CreateTime.Compare(a.CreateTime)
	})
}

package model

import (
	"errors"
	"fmt"
)

// DefaultPageSize is used when a caller does not ask for a page size.
const DefaultPageSize = 16

// ErrInvalidPageSize is returned for requests with a non-positive page size.
var ErrInvalidPageSize = errors.New("page size must be greater than zero")

// PageCursor is an opaque continuation token. The empty cursor means there
// are no further pages; it is never a valid token value.
type PageCursor = string

// PageRequest asks a data source for one page.
type PageRequest struct {
	Filter    string     `json:"filter"`
	PageSize  int        `json:"pageSize"`
	PageToken PageCursor `json:"pageToken"`
}

// Validate checks the request before it reaches a source.
func (r PageRequest) Validate() error {
	if r.PageSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, r.PageSize)
	}
	return nil
}

// First reports whether the request asks for the first page.
func (r PageRequest) First() bool { return r.PageToken == "" }

// PageResponse is one page of items plus the cursor of the next page.
type PageResponse struct {
	Items         []Item     `json:"items"`
	NextPageToken PageCursor `json:"nextPageToken"`
}

// Last reports whether no further pages follow.
func (r PageResponse) Last() bool { return r.NextPageToken == "" }

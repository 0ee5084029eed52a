package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// ErrInvalidCursor is returned when a page token cannot be decoded.
var ErrInvalidCursor = errors.New("invalid page token")

// TransientFetchError wraps any failure of a page fetch. Callers are
// expected to surface it and let the user retry.
type TransientFetchError struct {
	Op      string
	Request model.PageRequest
	Err     error
}

func (e *TransientFetchError) Error() string {
	if e.Request.PageToken == "" {
		return fmt.Sprintf("%s (first page): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s (page %q): %v", e.Op, e.Request.PageToken, e.Err)
}

func (e *TransientFetchError) Unwrap() error { return e.Err }

// IsTransient reports whether err is (or wraps) a TransientFetchError.
func IsTransient(err error) bool {
	var tfe *TransientFetchError
	return errors.As(err, &tfe)
}

package store

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/pagedlist/internal/model"
)

const cursorPrefix = "offset:"

// EncodeCursor turns an offset into an opaque page token.
// Offsets <= 0 encode to the empty cursor.
func EncodeCursor(offset int) model.PageCursor {
	if offset <= 0 {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// DecodeCursor is the inverse of EncodeCursor. The empty cursor decodes to 0.
func DecodeCursor(token model.PageCursor) (int, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := decodeB64URL(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	s, ok := strings.CutPrefix(raw, cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}
	return n, nil
}

// decodeB64URL accepts both padded and unpadded input.
func decodeB64URL(s string) (string, error) {
	dec, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		dec2, err2 := base64.URLEncoding.DecodeString(s)
		if err2 != nil {
			return "", err
		}
		return string(dec2), nil
	}
	return string(dec), nil
}

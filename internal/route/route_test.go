package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsScrollToTopVisible(t *testing.T) {
	cases := map[string]bool{
		"/":           true,
		"/explore":    true,
		"/archived":   true,
		"/u/alice":    true,
		"/u/":         true,
		"/setting":    false,
		"/explore/x":  false,
		"":            false,
		"/memos/abc1": false,
	}
	for path, want := range cases {
		assert.Equal(t, want, IsScrollToTopVisible(path), path)
	}
}

func TestFilter(t *testing.T) {
	assert.Equal(t, "archived", Filter(Archived))
	assert.Equal(t, "creator:alice", Filter("/u/alice/memos"))
	assert.Equal(t, "", Filter("/u/"))
	assert.Equal(t, "", Filter(Root))
}

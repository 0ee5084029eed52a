package pager

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// PageLoadedMsg is the completion of a fetch. It carries the controller and
// generation it was issued under so that superseded completions can be
// dropped.
type PageLoadedMsg struct {
	Owner      uint64
	Generation uint64
	Request    model.PageRequest
	Response   model.PageResponse
	Err        error
}

// GetGeneration returns the generation the fetch was issued under.
func (m PageLoadedMsg) GetGeneration() uint64 { return m.Generation }

var _ tea.Msg = PageLoadedMsg{}

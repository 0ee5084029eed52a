// Package layout measures where floating controls go relative to the list
// container.
package layout

import (
	"os"

	"golang.org/x/term"
)

// MeasureFunc returns the container's right edge (in columns) for a
// viewport of the given width.
type MeasureFunc func(viewportWidth int) (rightEdge int)

// LeftAligned measures a container that starts at column 0 and grows up to
// maxWidth columns. maxWidth <= 0 means the container fills the viewport.
func LeftAligned(maxWidth int) MeasureFunc {
	return func(viewportWidth int) int {
		if maxWidth <= 0 || viewportWidth < maxWidth {
			return viewportWidth
		}
		return maxWidth
	}
}

// Tracker keeps the gap between the container's right edge and the viewport's
// right edge current. It only follows resizes between Attach and Detach.
type Tracker struct {
	measure  MeasureFunc
	attached bool
	width    int
	offset   int
}

// NewTracker returns a detached tracker.
func NewTracker(measure MeasureFunc) *Tracker {
	if measure == nil {
		measure = LeftAligned(0)
	}
	return &Tracker{measure: measure}
}

// Attach starts listening and measures once for the initial layout.
func (t *Tracker) Attach(viewportWidth int) int {
	t.attached = true
	return t.recompute(viewportWidth)
}

// Resize recomputes the offset. After Detach it returns the last offset.
func (t *Tracker) Resize(viewportWidth int) int {
	if !t.attached {
		return t.offset
	}
	return t.recompute(viewportWidth)
}

// Detach stops listening for resizes.
func (t *Tracker) Detach() { t.attached = false }

func (t *Tracker) Attached() bool { return t.attached }
func (t *Tracker) Offset() int    { return t.offset }

// ContainerWidth is the width the container gets in the last measured viewport.
func (t *Tracker) ContainerWidth() int { return t.width - t.offset }

func (t *Tracker) recompute(viewportWidth int) int {
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	t.width = viewportWidth
	t.offset = max(viewportWidth-t.measure(viewportWidth), 0)
	return t.offset
}

// TerminalWidth reports stdout's width, or 80 columns when it is not a
// terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

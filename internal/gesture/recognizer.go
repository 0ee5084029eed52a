// Package gesture turns mouse-wheel overscroll at the top of a list into a
// pull-to-refresh gesture.
package gesture

// DefaultThreshold is the number of wheel ticks a pull needs.
const DefaultThreshold = 3

// Phase of a pull gesture.
type Phase int

const (
	Idle Phase = iota
	Pulling
	Refreshing
)

func (p Phase) String() string {
	switch p {
	case Pulling:
		return "pulling"
	case Refreshing:
		return "refreshing"
	default:
		return "idle"
	}
}

// Recognizer counts wheel-up ticks that arrive while the list is already at
// the top. Reaching the threshold fires once and enters Refreshing until
// Settle is called.
type Recognizer struct {
	Threshold int

	distance   int
	refreshing bool
}

func (r *Recognizer) threshold() int {
	if r.Threshold <= 0 {
		return DefaultThreshold
	}
	return r.Threshold
}

// Pull registers one wheel-up tick and reports whether the gesture fired.
func (r *Recognizer) Pull(atTop bool) bool {
	if r.refreshing {
		return false
	}
	if !atTop {
		r.distance = 0
		return false
	}
	r.distance++
	if r.distance < r.threshold() {
		return false
	}
	r.distance = 0
	r.refreshing = true
	return true
}

// Release abandons a pull in progress.
func (r *Recognizer) Release() { r.distance = 0 }

// Settle ends the refreshing phase.
func (r *Recognizer) Settle() { r.refreshing = false }

// Distance is the number of ticks pulled so far.
func (r *Recognizer) Distance() int { return r.distance }

func (r *Recognizer) Phase() Phase {
	switch {
	case r.refreshing:
		return Refreshing
	case r.distance > 0:
		return Pulling
	default:
		return Idle
	}
}

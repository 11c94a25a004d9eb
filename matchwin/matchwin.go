// Package matchwin decides whether the competition is open for a given user
// at a given instant. It is a pure function of the configured window and the
// clock reading passed in; it holds no state and is safe for concurrent use.
package matchwin

import "time"

type State int

const (
	NotStarted State = iota
	Active
	Ended
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Active:
		return "active"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Window is the configured match time range. A nil Start means the match has
// always been open; a nil End means it never closes. With TimerEnabled false
// the window is ignored entirely.
type Window struct {
	Start        *time.Time
	End          *time.Time
	TimerEnabled bool
}

// State classifies the instant "now" for a requester. Admins bypass the
// window and always see an active match.
func (w Window) State(now time.Time, isAdmin bool) State {
	if !w.TimerEnabled || isAdmin {
		return Active
	}
	if w.Start != nil && now.Before(*w.Start) {
		return NotStarted
	}
	if w.End != nil && !now.Before(*w.End) {
		return Ended
	}
	return Active
}

// IsStarted reports whether the match has begun. Browsing endpoints require
// only this predicate, so tasks stay visible after the match closes.
func (w Window) IsStarted(now time.Time, isAdmin bool) bool {
	return w.State(now, isAdmin) != NotStarted
}

// IsNotEnded reports whether the match is still accepting submissions.
func (w Window) IsNotEnded(now time.Time, isAdmin bool) bool {
	return w.State(now, isAdmin) != Ended
}

package swot

import "fmt"

// SessionState represents the review session's position in its state
// machine.
type SessionState int

const (
	Idle       SessionState = iota // no session running, or queue exhausted
	Presenting                     // current card shown question-only
	Revealed                       // current card shown in full
)

var stateNames = [...]string{
	Idle:       "Idle",
	Presenting: "Presenting",
	Revealed:   "Revealed",
}

var _ fmt.Stringer = SessionState(0)

func (s SessionState) isValid() bool {
	return s >= Idle && s <= Revealed
}

// String returns the name of the state ("Idle", "Presenting", "Revealed").
// For invalid values it returns "SessionState(n)".
func (s SessionState) String() string {
	if s.isValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// hasCurrent reports whether a card is selected in this state.
func (s SessionState) hasCurrent() bool {
	return s == Presenting || s == Revealed
}

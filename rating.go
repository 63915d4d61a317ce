package swot

import (
	"encoding"
	"fmt"
	"strconv"
)

// Rating represents the user's assessment of recall quality on the SM-2
// scale of 0 (total blackout) to 5 (effortless recall).
type Rating int

const (
	Blackout Rating = iota // No recall at all.
	Wrong                  // Incorrect, but the answer looked familiar.
	Familiar               // Incorrect, yet felt easy once seen.
	Hard                   // Correct with serious difficulty.
	Good                   // Correct after some hesitation.
	Easy                   // Correct, effortless.
)

var ratingNames = [...]string{
	Blackout: "Blackout",
	Wrong:    "Wrong",
	Familiar: "Familiar",
	Hard:     "Hard",
	Good:     "Good",
	Easy:     "Easy",
}

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Rating(0)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is a valid rating (Blackout through Easy).
func (r Rating) IsValid() bool {
	return r >= Blackout && r <= Easy
}

// Passing reports whether r counts as a successful recall under SM-2
// (rating 3 or above).
func (r Rating) Passing() bool {
	return r >= Hard
}

// String returns the name of the rating ("Blackout" ... "Easy").
// For invalid values it returns "Rating(n)".
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler. Ratings serialize as the
// decimal digit used in the persisted history encoding.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(strconv.Itoa(int(r))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Expects a decimal
// digit in [0,5].
func (r *Rating) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(string(text))
	if err != nil || !Rating(n).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRating, text)
	}
	*r = Rating(n)
	return nil
}

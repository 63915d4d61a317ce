package swot

import "errors"

// Sentinel errors for the swot package.
// Use errors.Is to check: errors.Is(err, swot.ErrInvalidRating)
var (
	ErrInvalidRating    = errors.New("swot: invalid rating")
	ErrNoCurrentCard    = errors.New("swot: no current card in session")
	ErrMalformedHistory = errors.New("swot: malformed history")
)

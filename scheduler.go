package swot

import "fmt"

// Schedule computes the card state after a review with the given rating,
// per SM-2. The input card is not mutated; on an invalid rating it is
// returned unchanged alongside an error wrapping ErrInvalidRating.
//
// A failing rating (below 3) resets the repetition count and interval. A
// passing rating increments the repetition count and derives the interval
// from the repetition count prior to the review. The easiness factor is
// recomputed on every review. The next due date is the prior due date plus
// the new interval: the schedule stays anchored to its own calendar,
// independent of when the review actually happened.
func Schedule(c Card, r Rating) (Card, error) {
	if !r.IsValid() {
		return c, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}

	next := c
	if r.Passing() {
		next.Interval = nextInterval(c.Rep, c.Interval, c.Ease)
		next.Rep = c.Rep + 1
	} else {
		next.Interval = firstInterval
		next.Rep = 0
	}
	next.Ease = nextEase(c.Ease, r)
	next.Due = c.Due.AddDate(0, 0, next.Interval)
	return next, nil
}

// Preview returns the result of reviewing the card with each possible
// rating.
func Preview(c Card) map[Rating]Card {
	result := make(map[Rating]Card, int(Easy)+1)
	for r := Blackout; r <= Easy; r++ {
		next, _ := Schedule(c, r)
		result[r] = next
	}
	return result
}

// Replay rebuilds a card's scheduling state by applying the given review
// events in order, starting from c. It allows reconstructing state from the
// history log alone, which is what makes retrofitting a different algorithm
// possible later.
func Replay(c Card, reviews []Review) (Card, error) {
	for _, rev := range reviews {
		next, err := Schedule(c, rev.Rating)
		if err != nil {
			return c, err
		}
		c = next
	}
	return c, nil
}

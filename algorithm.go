package swot

import "math"

// SM-2 constants (Wozniak). New cards start at DefaultEase and DefaultInterval;
// the easiness factor never drops below MinEase.
const (
	DefaultEase     = 2.5
	MinEase         = 1.3
	DefaultInterval = 1

	firstInterval  = 1 // after the first successful review
	secondInterval = 6 // after the second successful review
)

// nextEase computes the updated easiness factor for a review with the given
// rating, clamped to MinEase.
//
//	EF' = max(1.3, EF - 0.8 + 0.28*q - 0.02*q²)
//
// The polynomial is the expanded form of the canonical
// EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)). It is applied on every review,
// failures included.
func nextEase(ease float64, r Rating) float64 {
	q := float64(r)
	return math.Max(MinEase, ease-0.8+0.28*q-0.02*q*q)
}

// nextInterval computes the interval in days after a successful review,
// switching on the repetition count prior to the review.
func nextInterval(rep, interval int, ease float64) int {
	switch rep {
	case 0:
		return firstInterval
	case 1:
		return secondInterval
	default:
		return int(math.Round(float64(interval) * ease))
	}
}

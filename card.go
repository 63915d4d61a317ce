package swot

import "time"

// DateLayout is the persisted encoding of all review dates.
const DateLayout = "2006-01-02"

// Card holds the SM-2 scheduling state of one reviewable item.
type Card struct {
	Due      time.Time // next review date, date precision
	Rep      int       // consecutive successful reviews since last failure
	Interval int       // days between the previous and next review
	Ease     float64   // easiness factor, ≥ MinEase
}

// NewCard returns the scheduling state of a freshly created card:
// due today, no repetitions, default interval and ease.
func NewCard(now time.Time) Card {
	return Card{
		Due:      dateOf(now),
		Interval: DefaultInterval,
		Ease:     DefaultEase,
	}
}

// dateOf truncates t to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package swot

import "time"

// DueEntries returns the deck entries whose review date is strictly earlier
// than now's calendar date, preserving document order. Every entry is
// visited exactly once; entries without a parsable review field are never
// due.
func DueEntries(d Deck, now time.Time) []Entry {
	today := dateOf(now)
	var due []Entry
	for _, e := range d.Entries() {
		v, ok := e.Field(FieldReview)
		if !ok {
			continue
		}
		day, err := time.Parse(DateLayout, v)
		if err != nil {
			continue
		}
		if day.Before(today) {
			due = append(due, e)
		}
	}
	return due
}

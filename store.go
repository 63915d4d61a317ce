package swot

import (
	"strconv"
	"time"
)

// Names of the persisted scheduling fields on an entry.
const (
	FieldReview   = "review"
	FieldRep      = "rep"
	FieldInterval = "interval"
	FieldEase     = "EF"
	FieldHistory  = "history"
)

// Entry is one reviewable item in a document store. Field reads report
// absence through the bool result; Body splits the free text on a literal
// "---" line into question and answer (answer is empty when no delimiter
// exists).
type Entry interface {
	Field(name string) (string, bool)
	SetField(name, value string)
	Body() (question, answer string)
}

// Deck enumerates the entries of a document store in document order.
type Deck interface {
	Entries() []Entry
}

// Syncer is implemented by decks that persist field writes. The session
// controller syncs the current entry after applying a rating.
type Syncer interface {
	Sync(Entry) error
}

// ReadCard resolves an entry's scheduling fields into a Card, substituting
// the documented defaults (rep 0, interval 1, EF 2.5) for absent or
// unparsable values. A missing review field leaves Due at the zero time;
// such entries are never selected as due.
func ReadCard(e Entry) Card {
	var due time.Time
	if v, ok := e.Field(FieldReview); ok {
		if d, err := time.Parse(DateLayout, v); err == nil {
			due = d
		}
	}
	return Card{
		Due:      due,
		Rep:      fieldInt(e, FieldRep, 0),
		Interval: fieldInt(e, FieldInterval, DefaultInterval),
		Ease:     fieldFloat(e, FieldEase, DefaultEase),
	}
}

// WriteCard stores the card's four scheduling fields on the entry.
// The ease factor is printed with as many digits as needed to round-trip.
func WriteCard(e Entry, c Card) {
	e.SetField(FieldReview, c.Due.Format(DateLayout))
	e.SetField(FieldRep, strconv.Itoa(c.Rep))
	e.SetField(FieldInterval, strconv.Itoa(c.Interval))
	e.SetField(FieldEase, strconv.FormatFloat(c.Ease, 'g', -1, 64))
}

func fieldInt(e Entry, name string, def int) int {
	v, ok := e.Field(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func fieldFloat(e Entry, name string, def float64) float64 {
	v, ok := e.Field(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

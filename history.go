package swot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Review records a single rating event for a card.
type Review struct {
	On     time.Time // date of the review, date precision
	Rating Rating
}

// historyTag separates the date from the rating inside a history token.
const historyTag = ":rate:"

// token returns the persisted form of the review: "<YYYY-MM-DD>:rate:<0-5>".
func (r Review) token() string {
	return r.On.Format(DateLayout) + historyTag + strconv.Itoa(int(r.Rating))
}

// AppendHistory appends a rating event to a serialized history, separated
// from prior content by a single space. An empty history gains no leading
// separator. The rating is recorded as given; callers validate it first.
func AppendHistory(history string, r Rating, now time.Time) string {
	tok := Review{On: dateOf(now), Rating: r}.token()
	if history == "" {
		return tok
	}
	return history + " " + tok
}

// ParseHistory decodes a serialized history into its ordered review events.
// Tokens are whitespace-separated; any unrecognizable token yields an error
// wrapping ErrMalformedHistory.
func ParseHistory(s string) ([]Review, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	reviews := make([]Review, 0, len(fields))
	for _, tok := range fields {
		rev, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func parseToken(tok string) (Review, error) {
	date, digit, ok := strings.Cut(tok, historyTag)
	if !ok {
		return Review{}, fmt.Errorf("%w: token %q", ErrMalformedHistory, tok)
	}
	on, err := time.Parse(DateLayout, date)
	if err != nil {
		return Review{}, fmt.Errorf("%w: token %q: %v", ErrMalformedHistory, tok, err)
	}
	var r Rating
	if err := r.UnmarshalText([]byte(digit)); err != nil {
		return Review{}, fmt.Errorf("%w: token %q", ErrMalformedHistory, tok)
	}
	return Review{On: on, Rating: r}, nil
}

package swot

import (
	"errors"
	"strings"
	"testing"
)

func TestAppendHistoryEmpty(t *testing.T) {
	got := AppendHistory("", Good, date(2023, 4, 1))
	want := "2023-04-01:rate:4"
	if got != want {
		t.Errorf("AppendHistory(\"\") = %q, want %q", got, want)
	}
}

func TestAppendHistoryOrderPreserving(t *testing.T) {
	// Appends extend, never rewrite: the tail records r1 then r2 in order.
	h := AppendHistory("", Hard, date(2023, 4, 1))
	h = AppendHistory(h, Easy, date(2023, 4, 2))
	want := "2023-04-01:rate:3 2023-04-02:rate:5"
	if h != want {
		t.Errorf("history = %q, want %q", h, want)
	}

	h = AppendHistory(h, Blackout, date(2023, 4, 9))
	if !strings.HasSuffix(h, ":rate:3 2023-04-02:rate:5 2023-04-09:rate:0") {
		t.Errorf("history tail wrong: %q", h)
	}
	if !strings.HasPrefix(h, want) {
		t.Errorf("append rewrote prior content: %q", h)
	}
}

func TestParseHistoryRoundTrip(t *testing.T) {
	reviews := []Review{
		{On: date(2023, 4, 1), Rating: Good},
		{On: date(2023, 4, 2), Rating: Blackout},
		{On: date(2023, 4, 3), Rating: Easy},
	}
	h := ""
	for _, rev := range reviews {
		h = AppendHistory(h, rev.Rating, rev.On)
	}

	got, err := ParseHistory(h)
	if err != nil {
		t.Fatalf("ParseHistory(%q): %v", h, err)
	}
	if len(got) != len(reviews) {
		t.Fatalf("ParseHistory returned %d reviews, want %d", len(got), len(reviews))
	}
	for i := range reviews {
		if !got[i].On.Equal(reviews[i].On) || got[i].Rating != reviews[i].Rating {
			t.Errorf("review[%d] = %+v, want %+v", i, got[i], reviews[i])
		}
	}
}

func TestParseHistoryEmpty(t *testing.T) {
	got, err := ParseHistory("")
	if err != nil {
		t.Fatalf("ParseHistory(\"\"): %v", err)
	}
	if got != nil {
		t.Errorf("ParseHistory(\"\") = %v, want nil", got)
	}
}

func TestParseHistoryExtraWhitespace(t *testing.T) {
	got, err := ParseHistory("  2023-04-01:rate:4   2023-04-02:rate:5 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("parsed %d reviews, want 2", len(got))
	}
}

func TestParseHistoryMalformed(t *testing.T) {
	bad := []string{
		"2023-04-01",           // no tag
		"rate:4",               // no date
		"2023-13-01:rate:4",    // impossible month
		"2023-04-01:rate:9",    // rating out of range
		"2023-04-01:rate:",     // empty rating
		"2023-04-01:rate:4 x",  // trailing junk token
		"04/01/2023:rate:4",    // wrong date layout
	}
	for _, s := range bad {
		if _, err := ParseHistory(s); !errors.Is(err, ErrMalformedHistory) {
			t.Errorf("ParseHistory(%q) err = %v, want ErrMalformedHistory", s, err)
		}
	}
}

package cli

import (
	"strings"
	"time"

	"github.com/darius/swot"
	"github.com/darius/swot/deck"
)

// cmdDue lists the cards currently due, in document order.
func cmdDue(o *IO, deckDir string, _ []string) error {
	d, err := deck.Load(deckDir)
	if err != nil {
		return err
	}

	due := swot.DueEntries(d, time.Now())
	if len(due) == 0 {
		o.Println("nothing to review.")
		return nil
	}

	for _, e := range due {
		question, _ := e.Body()
		if c, ok := e.(*deck.Card); ok {
			o.Printf("%s  %s\n", c.ID(), firstLine(question))
		} else {
			o.Println(firstLine(question))
		}
	}
	o.Printf("%d card(s) due.\n", len(due))
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

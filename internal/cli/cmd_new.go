package cli

import (
	"errors"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/darius/swot/deck"
)

var errMissingQuestion = errors.New("new requires a question argument")

// cmdNew creates a card template: due today, empty history.
func cmdNew(o *IO, deckDir string, args []string) error {
	flags := flag.NewFlagSet("new", flag.ContinueOnError)
	flags.SetOutput(o.errOut)
	answer := flags.StringP("answer", "a", "", "answer text")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return errMissingQuestion
	}

	id, err := deck.Create(deckDir, flags.Arg(0), *answer, time.Now())
	if err != nil {
		return err
	}

	o.Println("created", id)
	return nil
}

package cli

import (
	"errors"
	"io"
	"math/rand"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/darius/swot"
	"github.com/darius/swot/deck"
)

// cmdReview runs an interactive review session over the due cards.
func cmdReview(o *IO, in io.Reader, deckDir string, args []string) error {
	flags := flag.NewFlagSet("review", flag.ContinueOnError)
	flags.SetOutput(o.errOut)
	seed := flags.Int64("seed", 0, "seed the card order (0 = random)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	d, err := deck.Load(deckDir)
	if err != nil {
		return err
	}

	var cfg swot.SessionConfig
	if *seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(*seed))
	}
	session := swot.NewSession(d, cfg)

	p := newPrompter(in, o)
	defer func() { _ = p.Close() }()

	return runReview(o, session, p)
}

// runReview drives the session loop: question, reveal, rate, next.
// Ratings outside 0-5 re-prompt; quitting mid-queue just abandons the rest.
func runReview(o *IO, session *swot.Session, p prompter) error {
	n := session.Start()
	if n == 0 {
		o.Println("nothing to review.")
		return nil
	}
	o.Printf("%d card(s) due.\n", n)

	for session.State() != swot.Idle {
		question, err := session.Prompt()
		if err != nil {
			return err
		}
		o.Println()
		o.Println(question)

		line, err := p.Prompt("[enter to reveal, q to quit] ")
		if err != nil || isQuit(line) {
			o.Println("session abandoned.")
			return nil
		}

		full, err := session.Reveal()
		if err != nil {
			return err
		}
		o.Println(full)

		if done, err := rateCurrent(o, session, p); err != nil {
			return err
		} else if done {
			o.Println("session abandoned.")
			return nil
		}
	}

	o.Println("session complete.")
	return nil
}

// rateCurrent prompts until a valid rating (or skip) is applied. The bool
// result reports that the user quit.
func rateCurrent(o *IO, session *swot.Session, p prompter) (bool, error) {
	for {
		line, err := p.Prompt("rate 0-5 (s to skip, q to quit): ")
		if err != nil || isQuit(line) {
			return true, nil
		}

		line = strings.TrimSpace(line)
		if line == "s" {
			return false, session.Next()
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			o.Println("enter a number between 0 and 5.")
			continue
		}

		if err := session.Rate(swot.Rating(n)); err != nil {
			if errors.Is(err, swot.ErrInvalidRating) {
				o.Println("rating must be between 0 and 5.")
				continue
			}
			return false, err
		}
		return false, nil
	}
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

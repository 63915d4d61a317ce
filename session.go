package swot

import (
	"fmt"
	"math/rand"
	"time"
)

// SessionConfig configures a Session. Zero values produce sensible
// defaults; see field comments.
type SessionConfig struct {
	Now  func() time.Time // nil → time.Now
	Rand *rand.Rand       // nil → time-seeded source
}

// Session walks a randomly ordered queue of due cards, feeding each rating
// back into the scheduler and the history log. Each deck/session pairing
// owns its own Session; abandoning one mid-queue needs no cleanup, since
// field writes happen only inside Rate.
type Session struct {
	deck  Deck
	now   func() time.Time
	rng   *rand.Rand
	queue []Entry
	state SessionState
}

// NewSession creates an idle session over the given deck.
func NewSession(d Deck, cfg SessionConfig) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{deck: d, now: now, rng: rng, state: Idle}
}

// State returns the session's current state.
func (s *Session) State() SessionState {
	return s.state
}

// Remaining returns the number of cards left in the queue, the current
// card included.
func (s *Session) Remaining() int {
	return len(s.queue)
}

// Current returns the card being presented, if any.
func (s *Session) Current() (Entry, bool) {
	if !s.state.hasCurrent() {
		return nil, false
	}
	return s.queue[0], true
}

// Start gathers the due cards, shuffles them into a fresh queue, and
// presents the first one. It returns the queue size; zero means nothing is
// due and the session stays Idle. Any previous queue is discarded.
func (s *Session) Start() int {
	s.queue = shuffled(DueEntries(s.deck, s.now()), s.rng)
	if len(s.queue) == 0 {
		s.state = Idle
	} else {
		s.state = Presenting
	}
	return len(s.queue)
}

// Prompt narrows the current card to its question text. Returns
// ErrNoCurrentCard when no card is selected.
func (s *Session) Prompt() (string, error) {
	if !s.state.hasCurrent() {
		return "", ErrNoCurrentCard
	}
	question, _ := s.queue[0].Body()
	s.state = Presenting
	return question, nil
}

// Reveal widens the current card to its full body, question and answer.
// Returns ErrNoCurrentCard when no card is selected.
func (s *Session) Reveal() (string, error) {
	if !s.state.hasCurrent() {
		return "", ErrNoCurrentCard
	}
	question, answer := s.queue[0].Body()
	s.state = Revealed
	if answer == "" {
		return question, nil
	}
	return question + "\n---\n" + answer, nil
}

// Rate applies a recall rating to the current card: the rating event is
// appended to the card's history, the scheduler's four fields are written
// back, the deck is synced if it persists writes, and the queue advances.
// An out-of-range rating is rejected before any write, leaving the card and
// the session state unchanged.
func (s *Session) Rate(r Rating) error {
	if !s.state.hasCurrent() {
		return ErrNoCurrentCard
	}
	if !r.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}

	e := s.queue[0]
	now := s.now()

	history, _ := e.Field(FieldHistory)
	e.SetField(FieldHistory, AppendHistory(history, r, now))

	next, err := Schedule(ReadCard(e), r)
	if err != nil {
		return err
	}
	WriteCard(e, next)

	if syncer, ok := s.deck.(Syncer); ok {
		if err := syncer.Sync(e); err != nil {
			return fmt.Errorf("swot: syncing entry: %w", err)
		}
	}

	s.advance()
	return nil
}

// Next advances past the current card without rating it. The skipped card
// keeps its schedule and leaves no history. Returns ErrNoCurrentCard when
// no card is selected.
func (s *Session) Next() error {
	if !s.state.hasCurrent() {
		return ErrNoCurrentCard
	}
	s.advance()
	return nil
}

// advance pops the current card and presents the next one, or goes Idle on
// queue exhaustion.
func (s *Session) advance() {
	s.queue = s.queue[1:]
	if len(s.queue) == 0 {
		s.state = Idle
	} else {
		s.state = Presenting
	}
}

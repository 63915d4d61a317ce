// Package deck implements a file-backed document store for review cards.
//
// A deck is a directory of markdown files, one card per file. Each file
// carries the card's scheduling fields in a frontmatter block and its
// question/answer text in the body, split on a literal "---" line:
//
//	---
//	review: 2023-01-01
//	rep: 2
//	interval: 6
//	EF: 2.36
//	history: 2023-01-01:rate:4 2023-01-07:rate:5
//	---
//	What is the capital of France?
//	---
//	Paris
//
// Document order is the lexical order of filenames; card IDs are
// lexicographically sortable timestamps, so order of creation is preserved.
// Decks are materialized in memory by Load; field writes are persisted per
// card by Sync using atomic file replacement.
package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/darius/swot"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600

	cardSuffix = ".md"
)

var (
	errForeignEntry  = errors.New("deck: entry does not belong to a file deck")
	errCardExists    = errors.New("deck: card file already exists")
	errEmptyQuestion = errors.New("deck: question must not be empty")
)

// Deck is an in-memory view of a card directory.
type Deck struct {
	dir   string
	cards []*Card
}

// Compile-time interface checks.
var (
	_ swot.Deck   = (*Deck)(nil)
	_ swot.Syncer = (*Deck)(nil)
	_ swot.Entry  = (*Card)(nil)
)

// Load reads every card file in dir into memory, in filename order.
// A missing directory yields an empty deck, not an error. Files that don't
// parse as cards still become entries; they simply carry no fields and are
// never due.
func Load(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return &Deck{dir: dir}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("deck: reading %s: %w", dir, err)
	}

	d := &Deck{dir: dir}
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), cardSuffix) {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("deck: reading card %s: %w", path, err)
		}
		d.cards = append(d.cards, parseCard(path, string(data)))
	}
	return d, nil
}

// Dir returns the deck directory.
func (d *Deck) Dir() string {
	return d.dir
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the deck's cards in document order.
func (d *Deck) Cards() []*Card {
	return d.cards
}

// Entries implements swot.Deck.
func (d *Deck) Entries() []swot.Entry {
	out := make([]swot.Entry, len(d.cards))
	for i, c := range d.cards {
		out[i] = c
	}
	return out
}

// Sync implements swot.Syncer: it rewrites the entry's backing file
// atomically.
func (d *Deck) Sync(e swot.Entry) error {
	c, ok := e.(*Card)
	if !ok {
		return errForeignEntry
	}
	return writeCardFile(c.path, c.format())
}

// Create writes a new card template into dir: due today, empty history, all
// other scheduling fields absent until the first review. It returns the new
// card's ID.
func Create(dir, question, answer string, now time.Time) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errEmptyQuestion
	}

	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return "", fmt.Errorf("deck: creating deck directory: %w", err)
	}

	id, err := uniqueID(dir, now)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, id+cardSuffix)

	c := &Card{path: path, question: question, answer: answer}
	c.SetField(swot.FieldReview, now.Format(swot.DateLayout))
	c.SetField(swot.FieldHistory, "")

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", errCardExists, path)
	}
	if err := writeCardFile(path, c.format()); err != nil {
		return "", err
	}
	return id, nil
}

// writeCardFile replaces path atomically and pins its permissions
// (atomic.WriteFile doesn't set them for new files).
func writeCardFile(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("deck: writing card file: %w", err)
	}
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("deck: setting card file permissions: %w", err)
	}
	return nil
}

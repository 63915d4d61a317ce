// Package swot implements the SM-2 spaced repetition scheduling algorithm
// and the review-session state machine that drives it.
//
// swot provides a pure Schedule function for computing a card's next review
// date from a recall rating, an append-only review history encoding, and a
// Session controller that gathers due cards from a Deck, shuffles them, and
// walks them one at a time. The deck subpackage supplies a file-backed Deck;
// any store implementing the Entry and Deck interfaces works.
//
// Basic usage:
//
//	card := swot.NewCard(time.Now())
//	card, err := swot.Schedule(card, swot.Good)
//	if err != nil {
//	    log.Fatal(err)
//	}
package swot

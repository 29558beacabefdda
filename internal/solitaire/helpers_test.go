package solitaire

import (
	"testing"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// up and down build loose cards for hand-made positions.
func up(rank card.Rank, suit card.Suit) card.Card {
	c := card.New(rank, suit)
	c.FaceUp = true
	return c
}

func down(rank card.Rank, suit card.Suit) card.Card {
	return card.New(rank, suit)
}

// seqRNG replays a fixed sequence so deals are reproducible.
type seqRNG struct {
	values []int
	idx    int
}

func (r *seqRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func newDealtGame(t *testing.T) *Game {
	t.Helper()
	return New(&seqRNG{values: []int{7, 3, 11, 5, 2, 13, 17, 1}})
}

// snapshotPiles captures every pile for before/after comparisons.
func snapshotPiles(g *Game) Snapshot {
	return g.Snapshot()
}

// assertInvariants checks that the table holds each card once and every
// non-empty tableau column shows its top card.
func assertInvariants(t *testing.T, g *Game) {
	t.Helper()
	if n := g.CardCount(); n != deck.Size {
		t.Fatalf("CardCount = %d, want %d", n, deck.Size)
	}
	ids := make(map[card.ID]bool)
	for _, p := range g.Cards() {
		if ids[p.Card.ID] {
			t.Fatalf("card %s appears twice", p.Card)
		}
		ids[p.Card.ID] = true
	}
	for i := 0; i < deck.Columns; i++ {
		column := g.Column(i)
		if len(column) > 0 && !column[len(column)-1].FaceUp {
			t.Fatalf("tableau[%d] top card %s is face down", i, column[len(column)-1])
		}
	}
}

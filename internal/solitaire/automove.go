package solitaire

import (
	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// Locate finds where c can be picked up from. Tableau columns are searched
// first at any depth, then the top of c's foundation, then the top of the
// talon. Stock cards and cards buried in the talon or a foundation are not
// found.
func (g *Game) Locate(c card.Card) (PileRef, int, bool) {
	for column := range g.tableau {
		if i := indexOf(g.tableau[column], c.ID); i >= 0 {
			return TableauPile(column), i, true
		}
	}
	if c.Suit.Valid() {
		foundation := g.foundations[c.Suit]
		if t, ok := top(foundation); ok && t.ID == c.ID {
			return FoundationPile(c.Suit), len(foundation) - 1, true
		}
	}
	if t, ok := top(g.talon); ok && t.ID == c.ID {
		return TalonPile(), len(g.talon) - 1, true
	}
	return PileRef{}, 0, false
}

// AutoMove moves a tapped card somewhere useful. See AutoMoveTo.
func (g *Game) AutoMove(c card.Card) bool {
	_, ok := g.AutoMoveTo(c)
	return ok
}

// AutoMoveTo moves c, together with every card above it when it sits in
// the tableau, to the first legal destination: its own foundation first,
// then the tableau columns to the right of its source wrapping round to the
// left. Cards from the talon or a foundation try columns 0 through 6. It
// returns the destination on success.
func (g *Game) AutoMoveTo(c card.Card) (PileRef, bool) {
	from, index, ok := g.Locate(c)
	if !ok {
		return PileRef{}, false
	}

	run := []card.Card{(*g.pile(from))[index]}
	if from.Kind == Tableau {
		run = clone(g.tableau[from.Column][index:])
	}

	if dest := FoundationPile(c.Suit); g.MovePile(run, from, dest) {
		return dest, true
	}

	for _, column := range destinationColumns(from) {
		if dest := TableauPile(column); g.MovePile(run, from, dest) {
			return dest, true
		}
	}
	return PileRef{}, false
}

// destinationColumns lists the tableau columns to try, in order, for a run
// picked up from from.
func destinationColumns(from PileRef) []int {
	columns := make([]int, 0, deck.Columns)
	if from.Kind != Tableau {
		for i := 0; i < deck.Columns; i++ {
			columns = append(columns, i)
		}
		return columns
	}
	for i := from.Column + 1; i < deck.Columns; i++ {
		columns = append(columns, i)
	}
	for i := 0; i < from.Column; i++ {
		columns = append(columns, i)
	}
	return columns
}

package solitaire

import (
	"testing"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	g := &Game{}
	buried := down(5, card.Club)
	exposed := up(9, card.Diamond)
	g.tableau[4] = []card.Card{buried, exposed}
	aceH, twoH := up(card.Ace, card.Heart), up(2, card.Heart)
	g.foundations[card.Heart] = []card.Card{aceH, twoH}
	oldTalon, topTalon := up(3, card.Spade), up(card.Jack, card.Club)
	g.talon = []card.Card{oldTalon, topTalon}
	inStock := down(card.Queen, card.Spade)
	g.stock = []card.Card{inStock}

	pile, index, ok := g.Locate(buried)
	require.True(t, ok)
	assert.Equal(t, TableauPile(4), pile)
	assert.Equal(t, 0, index)

	pile, index, ok = g.Locate(twoH)
	require.True(t, ok)
	assert.Equal(t, FoundationPile(card.Heart), pile)
	assert.Equal(t, 1, index)

	pile, index, ok = g.Locate(topTalon)
	require.True(t, ok)
	assert.Equal(t, TalonPile(), pile)
	assert.Equal(t, 1, index)

	for _, c := range []card.Card{aceH, oldTalon, inStock, up(card.King, card.Heart)} {
		_, _, ok := g.Locate(c)
		assert.False(t, ok, "%s should not be found", c)
	}
}

func TestAutoMovePrefersFoundation(t *testing.T) {
	g := &Game{}
	ace := up(card.Ace, card.Spade)
	g.talon = []card.Card{ace}
	g.tableau[0] = []card.Card{up(2, card.Heart)} // also a legal tableau target

	dest, ok := g.AutoMoveTo(ace)
	require.True(t, ok)
	assert.Equal(t, FoundationPile(card.Spade), dest)
	assert.Empty(t, g.Talon())
	assert.Len(t, g.Foundation(card.Spade), 1)
}

func TestAutoMoveMovesRun(t *testing.T) {
	g := &Game{}
	hidden := down(4, card.Club)
	nine := up(9, card.Spade)
	eight := up(8, card.Heart)
	g.tableau[1] = []card.Card{hidden, nine, eight}
	g.tableau[5] = []card.Card{up(10, card.Diamond)}

	dest, ok := g.AutoMoveTo(nine)
	require.True(t, ok)
	assert.Equal(t, TableauPile(5), dest)

	col5 := g.Column(5)
	require.Len(t, col5, 3)
	assert.True(t, col5[1].Is(nine))
	assert.True(t, col5[2].Is(eight))
	require.Len(t, g.Column(1), 1)
	assert.True(t, g.Column(1)[0].FaceUp)
}

func TestAutoMoveColumnOrderWrapsAfterSource(t *testing.T) {
	// Red 8s in columns 1 and 5; the black 7 comes from column 3 and
	// should land in column 5, the first match after its source.
	g := &Game{}
	seven := up(7, card.Club)
	g.tableau[1] = []card.Card{up(8, card.Heart)}
	g.tableau[3] = []card.Card{seven}
	g.tableau[5] = []card.Card{up(8, card.Diamond)}

	dest, ok := g.AutoMoveTo(seven)
	require.True(t, ok)
	assert.Equal(t, TableauPile(5), dest)
}

func TestAutoMoveColumnOrderWrapsToStart(t *testing.T) {
	g := &Game{}
	seven := up(7, card.Club)
	g.tableau[0] = []card.Card{up(8, card.Diamond)}
	g.tableau[2] = []card.Card{up(8, card.Heart)}
	g.tableau[6] = []card.Card{seven}

	dest, ok := g.AutoMoveTo(seven)
	require.True(t, ok)
	assert.Equal(t, TableauPile(0), dest)
}

func TestAutoMoveFromTalonTriesColumnsInOrder(t *testing.T) {
	g := &Game{}
	king := up(card.King, card.Spade)
	g.talon = []card.Card{king}
	g.tableau[0] = []card.Card{up(3, card.Club)}
	// columns 1..6 are empty; the king goes to the first empty one

	dest, ok := g.AutoMoveTo(king)
	require.True(t, ok)
	assert.Equal(t, TableauPile(1), dest)
}

func TestAutoMoveFromFoundation(t *testing.T) {
	g := &Game{}
	ace := up(card.Ace, card.Diamond)
	two := up(2, card.Diamond)
	g.foundations[card.Diamond] = []card.Card{ace, two}
	g.tableau[4] = []card.Card{up(3, card.Spade)}

	dest, ok := g.AutoMoveTo(two)
	require.True(t, ok)
	assert.Equal(t, TableauPile(4), dest)
	assert.Len(t, g.Foundation(card.Diamond), 1)
}

func TestAutoMoveNoDestinationLeavesTableUnchanged(t *testing.T) {
	g := newDealtGame(t)

	// Find a tableau card with nowhere to go.
	var stuck *card.Card
	for i := 0; i < 7 && stuck == nil; i++ {
		for _, c := range g.Column(i) {
			probe, err := FromSnapshot(g.Snapshot())
			require.NoError(t, err)
			if !probe.AutoMove(c) {
				stuck = &c
				break
			}
		}
	}
	require.NotNil(t, stuck, "a fresh deal always has an immovable buried card")

	before := g.Snapshot()
	assert.False(t, g.AutoMove(*stuck))
	assert.Equal(t, before, g.Snapshot())
}

func TestAutoMoveNotFound(t *testing.T) {
	g := newDealtGame(t)
	before := g.Snapshot()

	assert.False(t, g.AutoMove(up(card.King, card.Heart)), "unknown identity")
	stock := g.Stock()
	assert.False(t, g.AutoMove(stock[len(stock)-1]), "stock cards cannot be tapped")
	assert.Equal(t, before, g.Snapshot())
}

func TestAutoMoveBuriedTalonCard(t *testing.T) {
	g := &Game{}
	buried := up(card.King, card.Club)
	g.talon = []card.Card{buried, up(4, card.Heart)}

	assert.False(t, g.AutoMove(buried))
	assert.Len(t, g.Talon(), 2)
}

func TestDestinationColumns(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, destinationColumns(TalonPile()))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, destinationColumns(FoundationPile(card.Club)))
	assert.Equal(t, []int{3, 4, 5, 6, 0, 1}, destinationColumns(TableauPile(2)))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, destinationColumns(TableauPile(0)))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, destinationColumns(TableauPile(6)))
}

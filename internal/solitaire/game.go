// Package solitaire implements the rules of draw-one Klondike.
//
// A Game owns every card on the table. Callers drive it through a small
// set of intents (DrawOrRecycle, AutoMove, MovePile, NewGame, Tick) and read
// back copies of the piles for rendering. Nothing in this package blocks,
// logs, or touches storage; a Game must only be used from one goroutine.
package solitaire

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// Game is the complete state of one Klondike deal.
type Game struct {
	stock       []card.Card
	talon       []card.Card
	tableau     [deck.Columns][]card.Card
	foundations [4][]card.Card // indexed by card.Suit

	score   int
	elapsed int // seconds
}

// New deals a freshly shuffled game.
func New(rng deck.RNG) *Game {
	g := &Game{}
	g.NewGame(rng)
	return g
}

// NewGame discards the current table and deals a new shuffled game with
// score and elapsed time back at zero.
func (g *Game) NewGame(rng deck.RNG) {
	layout := deck.Deal(deck.NewShuffled(rng))
	*g = Game{
		stock:   layout.Stock,
		tableau: layout.Tableau,
	}
}

// DrawResult says what DrawOrRecycle did.
type DrawResult int

const (
	Nothing DrawResult = iota
	Drew
	Recycled
)

func (r DrawResult) String() string {
	switch r {
	case Drew:
		return "drew"
	case Recycled:
		return "recycled"
	default:
		return "nothing"
	}
}

// DrawOrRecycle turns the top stock card onto the talon. When the stock is
// empty the talon is turned face down and moved back onto the stock in
// reverse, so the next pass draws the same cards in the same order.
func (g *Game) DrawOrRecycle() DrawResult {
	if len(g.stock) > 0 {
		c := g.stock[len(g.stock)-1]
		g.stock = g.stock[:len(g.stock)-1]
		c.FaceUp = true
		g.talon = append(g.talon, c)
		return Drew
	}

	if len(g.talon) == 0 {
		return Nothing
	}

	for i := len(g.talon) - 1; i >= 0; i-- {
		c := g.talon[i]
		c.FaceUp = false
		g.stock = append(g.stock, c)
	}
	g.talon = nil
	return Recycled
}

// IsComplete reports whether all four foundations hold a full suit.
func (g *Game) IsComplete() bool {
	for _, suit := range card.Suits {
		if len(g.foundations[suit]) != 13 {
			return false
		}
	}
	return true
}

// Score returns the score counter.
func (g *Game) Score() int { return g.score }

// AddScore adjusts the score counter. The engine never scores on its own;
// scoring policy belongs to whoever drives the game.
func (g *Game) AddScore(delta int) { g.score += delta }

// Tick advances the elapsed clock by one second.
func (g *Game) Tick() { g.elapsed++ }

// ElapsedSeconds returns the time played so far.
func (g *Game) ElapsedSeconds() int { return g.elapsed }

// ElapsedDisplay formats the elapsed time as H:MM:SS, or MM:SS under an hour.
func (g *Game) ElapsedDisplay() string {
	return FormatElapsed(g.elapsed)
}

// FormatElapsed formats seconds as H:MM:SS, or MM:SS under an hour.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Stock returns a copy of the stock, top card last.
func (g *Game) Stock() []card.Card { return clone(g.stock) }

// Talon returns a copy of the talon, top card last.
func (g *Game) Talon() []card.Card { return clone(g.talon) }

// Column returns a copy of tableau column i, or nil if i is out of range.
func (g *Game) Column(i int) []card.Card {
	if i < 0 || i >= deck.Columns {
		return nil
	}
	return clone(g.tableau[i])
}

// Foundation returns a copy of the foundation for suit.
func (g *Game) Foundation(suit card.Suit) []card.Card {
	if !suit.Valid() {
		return nil
	}
	return clone(g.foundations[suit])
}

// CardCount returns how many cards are on the table. A live game always
// holds the full deck.
func (g *Game) CardCount() int {
	n := len(g.stock) + len(g.talon)
	for _, column := range g.tableau {
		n += len(column)
	}
	for _, foundation := range g.foundations {
		n += len(foundation)
	}
	return n
}

// Cards returns every card on the table paired with the pile holding it.
func (g *Game) Cards() []Placed {
	placed := make([]Placed, 0, deck.Size)
	add := func(ref PileRef, cards []card.Card) {
		for i, c := range cards {
			placed = append(placed, Placed{Card: c, Pile: ref, Index: i})
		}
	}
	add(StockPile(), g.stock)
	add(TalonPile(), g.talon)
	for i, column := range g.tableau {
		add(TableauPile(i), column)
	}
	for _, suit := range card.Suits {
		add(FoundationPile(suit), g.foundations[suit])
	}
	return placed
}

// Placed is a card together with where it sits.
type Placed struct {
	Card  card.Card
	Pile  PileRef
	Index int
}

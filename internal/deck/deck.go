package deck

import (
	"math/rand"

	"github.com/arcanaland/klondike/internal/card"
)

const (
	// Size is the number of cards in a standard deck
	Size = 52
	// Columns is the number of tableau columns in a Klondike deal
	Columns = 7
)

// RNG abstracts random number generation so shuffles can be replayed in tests.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.Intn(n) }

// DefaultRNG delegates to math/rand (auto-seeded).
var DefaultRNG RNG = stdRNG{}

// Layout is the table right after dealing
type Layout struct {
	Tableau [Columns][]card.Card
	Stock   []card.Card
}

// New returns all 52 rank and suit combinations in suit order, face down,
// each with a new identity.
func New() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// NewShuffled builds a fresh deck and applies a Fisher-Yates shuffle
func NewShuffled(rng RNG) []card.Card {
	if rng == nil {
		rng = DefaultRNG
	}
	cards := New()
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

// Deal lays out a triangular tableau. Column i takes i+1 cards from the top
// (end) of the deck and only the last card placed in each column is turned
// face up. Whatever is left becomes the stock, order preserved.
func Deal(cards []card.Card) Layout {
	var layout Layout
	remaining := append([]card.Card(nil), cards...)

	for column := 0; column < Columns; column++ {
		for index := 0; index <= column; index++ {
			if len(remaining) == 0 {
				break
			}
			c := remaining[len(remaining)-1]
			remaining = remaining[:len(remaining)-1]
			c.FaceUp = index == column
			layout.Tableau[column] = append(layout.Tableau[column], c)
		}
	}

	for i := range remaining {
		remaining[i].FaceUp = false
	}
	layout.Stock = remaining
	return layout
}

package solitaire

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// PileKind identifies which kind of location a pile is.
type PileKind int

const (
	Stock PileKind = iota
	Talon
	Tableau
	Foundation
)

func (k PileKind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Talon:
		return "talon"
	case Tableau:
		return "tableau"
	case Foundation:
		return "foundation"
	default:
		return fmt.Sprintf("PileKind(%d)", int(k))
	}
}

// PileRef names one pile on the table. Column is meaningful only for
// Tableau, Suit only for Foundation.
type PileRef struct {
	Kind   PileKind
	Column int
	Suit   card.Suit
}

func StockPile() PileRef { return PileRef{Kind: Stock} }

func TalonPile() PileRef { return PileRef{Kind: Talon} }

func TableauPile(column int) PileRef { return PileRef{Kind: Tableau, Column: column} }

func FoundationPile(suit card.Suit) PileRef { return PileRef{Kind: Foundation, Suit: suit} }

func (p PileRef) String() string {
	switch p.Kind {
	case Tableau:
		return fmt.Sprintf("tableau[%d]", p.Column)
	case Foundation:
		return fmt.Sprintf("foundation[%s]", p.Suit)
	default:
		return p.Kind.String()
	}
}

// pile returns a pointer to the backing slice for ref, or nil when ref does
// not name a pile on this table.
func (g *Game) pile(ref PileRef) *[]card.Card {
	switch ref.Kind {
	case Stock:
		return &g.stock
	case Talon:
		return &g.talon
	case Tableau:
		if ref.Column < 0 || ref.Column >= deck.Columns {
			return nil
		}
		return &g.tableau[ref.Column]
	case Foundation:
		if !ref.Suit.Valid() {
			return nil
		}
		return &g.foundations[ref.Suit]
	default:
		return nil
	}
}

// top returns the last card of cards.
func top(cards []card.Card) (card.Card, bool) {
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[len(cards)-1], true
}

func indexOf(cards []card.Card, id card.ID) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func clone(cards []card.Card) []card.Card {
	return append([]card.Card(nil), cards...)
}

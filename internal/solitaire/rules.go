package solitaire

import "github.com/arcanaland/klondike/internal/card"

// CanPlaceOnTableau reports whether c may land on a tableau column. An empty
// column only takes a King; otherwise c must be the opposite color and
// exactly one rank below the column's top card.
func CanPlaceOnTableau(c card.Card, column []card.Card) bool {
	dest, ok := top(column)
	if !ok {
		return c.Rank == card.King
	}
	return c.Suit.Color() != dest.Suit.Color() && c.Rank == dest.Rank-1
}

// CanPlaceOnFoundation reports whether c may land on the foundation for
// suit. Foundations build up by suit from the Ace.
func CanPlaceOnFoundation(c card.Card, suit card.Suit, foundation []card.Card) bool {
	if c.Suit != suit {
		return false
	}
	dest, ok := top(foundation)
	if !ok {
		return c.Rank == card.Ace
	}
	return c.Suit == dest.Suit && c.Rank == dest.Rank+1
}

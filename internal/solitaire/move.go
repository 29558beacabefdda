package solitaire

import "github.com/arcanaland/klondike/internal/card"

// MovePile moves a run of cards from one pile to another. cards[0] is the
// bottom of the run and decides legality for the whole run. Foundations
// only ever take a single card. Either the whole run moves or nothing does;
// the return value says which.
func (g *Game) MovePile(cards []card.Card, from, to PileRef) bool {
	if len(cards) == 0 || from == to {
		return false
	}

	var allowed bool
	switch to.Kind {
	case Tableau:
		dest := g.pile(to)
		if dest == nil {
			return false
		}
		allowed = CanPlaceOnTableau(cards[0], *dest)
	case Foundation:
		if len(cards) != 1 {
			return false
		}
		dest := g.pile(to)
		if dest == nil {
			return false
		}
		allowed = CanPlaceOnFoundation(cards[0], to.Suit, *dest)
	default:
		return false
	}
	if !allowed {
		return false
	}

	src := g.pile(from)
	if src == nil {
		return false
	}
	moving, ok := take(*src, cards)
	if !ok {
		return false
	}

	*src = remove(*src, cards)
	if from.Kind == Tableau && len(*src) > 0 {
		(*src)[len(*src)-1].FaceUp = true
	}
	dest := g.pile(to)
	*dest = append(*dest, moving...)
	return true
}

// take looks up every card of run in pile by identity and returns pile's
// copies in run order. It fails if any card is missing.
func take(pile, run []card.Card) ([]card.Card, bool) {
	moving := make([]card.Card, 0, len(run))
	for _, c := range run {
		i := indexOf(pile, c.ID)
		if i < 0 {
			return nil, false
		}
		moving = append(moving, pile[i])
	}
	return moving, true
}

// remove drops every card of run from pile, keeping the order of the rest.
func remove(pile, run []card.Card) []card.Card {
	kept := pile[:0:0]
	for _, c := range pile {
		if indexOf(run, c.ID) < 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

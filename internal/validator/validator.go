package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/solitaire"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found. Warnings do not count.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Error joins the errors into one message
func (r ValidationResults) Error() string {
	return strings.Join(r.Errors, "; ")
}

type Validator struct {
	Game    *solitaire.Game
	Results ValidationResults
}

func NewValidator(g *solitaire.Game) *Validator {
	return &Validator{
		Game:    g,
		Results: ValidationResults{},
	}
}

// Validate checks that the table is a position a real deal could be in.
func (v *Validator) Validate() (ValidationResults, error) {
	if v.Game == nil {
		return v.Results, fmt.Errorf("no game to validate")
	}

	v.validateDeck()
	v.validateFoundations()
	v.validateTalonAndStock()

	return v.Results, nil
}

// validateDeck checks the table holds one of each card, each only once
func (v *Validator) validateDeck() {
	type key struct {
		rank card.Rank
		suit card.Suit
	}

	placed := v.Game.Cards()
	if len(placed) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("expected %d cards on the table, found %d", deck.Size, len(placed)))
	}

	ids := make(map[card.ID]solitaire.PileRef, len(placed))
	values := make(map[key]int, len(placed))
	for _, p := range placed {
		if where, ok := ids[p.Card.ID]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %s is in both %s and %s", p.Card.ID, where, p.Pile))
		}
		ids[p.Card.ID] = p.Pile
		values[key{p.Card.Rank, p.Card.Suit}]++
	}

	// Check for missing or repeated faces
	missing := []string{}
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			c := card.Card{Rank: rank, Suit: suit}
			switch n := values[key{rank, suit}]; {
			case n == 0:
				missing = append(missing, c.Code())
			case n > 1:
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("%s appears %d times", c.Name(), n))
			}
		}
	}
	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing cards: %s", strings.Join(missing, ", ")))
	}
}

// validateFoundations checks every foundation builds up by suit from the Ace
func (v *Validator) validateFoundations() {
	for _, suit := range card.Suits {
		for i, c := range v.Game.Foundation(suit) {
			if c.Suit != suit || c.Rank != card.Rank(i+1) {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("foundation[%s] position %d holds %s", suit, i, c.Name()))
				break
			}
			if !c.FaceUp {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("foundation[%s] has face-down %s", suit, c.Name()))
			}
		}
	}
}

func (v *Validator) validateTalonAndStock() {
	for _, c := range v.Game.Talon() {
		if !c.FaceUp {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("talon has face-down %s", c.Name()))
		}
	}
	for _, c := range v.Game.Stock() {
		if c.FaceUp {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("stock has face-up %s", c.Name()))
		}
	}
}

package solitaire

import (
	"encoding/json"
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/google/uuid"
)

// SnapshotVersion is written into every snapshot. Bump it when the layout
// changes incompatibly.
const SnapshotVersion = 1

// CardState is the persisted form of a card
type CardState struct {
	ID     string `json:"id"`
	Rank   int    `json:"rank"`
	Suit   string `json:"suit"`
	FaceUp bool   `json:"faceUp"`
}

// Snapshot is the persisted form of a whole game
type Snapshot struct {
	Version        int                    `json:"version"`
	Stock          []CardState            `json:"stock"`
	Talon          []CardState            `json:"talon"`
	Tableau        [][]CardState          `json:"tableau"`
	Foundations    map[string][]CardState `json:"foundations"`
	Score          int                    `json:"score"`
	ElapsedSeconds int                    `json:"elapsedSeconds"`
}

// Snapshot captures the full game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Version:        SnapshotVersion,
		Stock:          encodeCards(g.stock),
		Talon:          encodeCards(g.talon),
		Tableau:        make([][]CardState, deck.Columns),
		Foundations:    make(map[string][]CardState, len(card.Suits)),
		Score:          g.score,
		ElapsedSeconds: g.elapsed,
	}
	for i, column := range g.tableau {
		s.Tableau[i] = encodeCards(column)
	}
	for _, suit := range card.Suits {
		s.Foundations[suit.String()] = encodeCards(g.foundations[suit])
	}
	return s
}

// FromSnapshot rebuilds a game. It checks the shape of the data (versions,
// ranks, suits, identities, no card twice) but not whether the position is
// reachable in play. A hidden tableau top is turned face up.
func FromSnapshot(s Snapshot) (*Game, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d", s.Version)
	}
	if len(s.Tableau) != deck.Columns {
		return nil, fmt.Errorf("expected %d tableau columns, got %d", deck.Columns, len(s.Tableau))
	}
	if s.ElapsedSeconds < 0 {
		return nil, fmt.Errorf("negative elapsed time: %d", s.ElapsedSeconds)
	}

	seen := make(map[card.ID]bool, deck.Size)
	decode := func(where string, states []CardState) ([]card.Card, error) {
		cards, err := decodeCards(states, seen)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %v", where, err)
		}
		return cards, nil
	}

	g := &Game{score: s.Score, elapsed: s.ElapsedSeconds}
	var err error
	if g.stock, err = decode("stock", s.Stock); err != nil {
		return nil, err
	}
	if g.talon, err = decode("talon", s.Talon); err != nil {
		return nil, err
	}
	for i, column := range s.Tableau {
		if g.tableau[i], err = decode(fmt.Sprintf("tableau[%d]", i), column); err != nil {
			return nil, err
		}
		if n := len(g.tableau[i]); n > 0 {
			g.tableau[i][n-1].FaceUp = true
		}
	}
	for name, states := range s.Foundations {
		suit, err := card.ParseSuit(name)
		if err != nil {
			return nil, fmt.Errorf("error decoding foundations: %v", err)
		}
		if g.foundations[suit], err = decode("foundation["+name+"]", states); err != nil {
			return nil, err
		}
	}

	if n := g.CardCount(); n != deck.Size {
		return nil, fmt.Errorf("expected %d cards, got %d", deck.Size, n)
	}
	return g, nil
}

// Marshal encodes the game as JSON.
func (g *Game) Marshal() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// Unmarshal decodes a game written by Marshal.
func Unmarshal(data []byte) (*Game, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("error parsing snapshot: %v", err)
	}
	return FromSnapshot(s)
}

func encodeCards(cards []card.Card) []CardState {
	states := make([]CardState, len(cards))
	for i, c := range cards {
		states[i] = CardState{
			ID:     c.ID.String(),
			Rank:   int(c.Rank),
			Suit:   c.Suit.String(),
			FaceUp: c.FaceUp,
		}
	}
	return states
}

func decodeCards(states []CardState, seen map[card.ID]bool) ([]card.Card, error) {
	if len(states) == 0 {
		return nil, nil
	}
	cards := make([]card.Card, len(states))
	for i, st := range states {
		id, err := uuid.Parse(st.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid card id %q: %v", st.ID, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate card id %s", id)
		}
		seen[id] = true

		rank := card.Rank(st.Rank)
		if !rank.Valid() {
			return nil, fmt.Errorf("invalid rank %d for card %s", st.Rank, id)
		}
		suit, err := card.ParseSuit(st.Suit)
		if err != nil {
			return nil, fmt.Errorf("card %s: %v", id, err)
		}
		cards[i] = card.Card{ID: id, Rank: rank, Suit: suit, FaceUp: st.FaceUp}
	}
	return cards, nil
}

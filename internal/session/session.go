// Package session is what a front end talks to. It owns the current game,
// persists it through a store.Store, drives the game clock from a
// clock.Ticker and applies the scoring policy to every successful move.
//
// A Session is not safe for concurrent use. Callers serialize intents and
// ticks on one goroutine, typically a select over user input and Ticks().
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/clock"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/solitaire"
	"github.com/arcanaland/klondike/internal/store"
	"github.com/arcanaland/klondike/internal/validator"
)

// TickInterval is how often the game clock advances.
const TickInterval = time.Second

// ErrNotVisible is returned by TapCode when no face-up card on the table
// matches the code.
var ErrNotVisible = errors.New("card is not face up on the table")

type Session struct {
	store store.Store
	clock clock.Clock
	rng   deck.RNG
	log   logrus.FieldLogger

	game   *solitaire.Game
	ticker clock.Ticker
}

// New starts a session on a fresh deal. Call Restore to pick up a saved
// game instead.
func New(s store.Store, c clock.Clock, rng deck.RNG, log logrus.FieldLogger) *Session {
	if c == nil {
		c = clock.Real{}
	}
	if rng == nil {
		rng = deck.DefaultRNG
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		store: s,
		clock: c,
		rng:   rng,
		log:   log,
		game:  solitaire.New(rng),
	}
}

// Restore loads the saved game. Missing, unreadable or inconsistent saves
// are logged and the current game is kept. It reports whether a saved game
// was loaded.
func (s *Session) Restore(ctx context.Context) bool {
	log := s.log.WithField("key", store.KeyGame)

	data, err := s.store.Get(ctx, store.KeyGame)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("no saved game")
		return false
	}
	if err != nil {
		log.WithError(err).Warn("could not read saved game")
		return false
	}

	g, err := solitaire.Unmarshal(data)
	if err != nil {
		log.WithError(err).Warn("discarding unreadable saved game")
		return false
	}

	results, err := validator.NewValidator(g).Validate()
	if err != nil {
		log.WithError(err).Warn("could not validate saved game")
		return false
	}
	for _, w := range results.Warnings {
		log.WithField("warning", w).Debug("saved game warning")
	}
	if !results.Valid() {
		log.WithError(results).Warn("discarding inconsistent saved game")
		return false
	}

	s.game = g
	log.WithFields(logrus.Fields{
		"score":   g.Score(),
		"elapsed": g.ElapsedSeconds(),
	}).Debug("restored saved game")
	return true
}

// Save stops the clock and writes the current game.
func (s *Session) Save(ctx context.Context) error {
	s.stopTicker()

	data, err := s.game.Marshal()
	if err != nil {
		return fmt.Errorf("error encoding game: %v", err)
	}
	if err := s.store.Put(ctx, store.KeyGame, data); err != nil {
		return err
	}
	s.log.WithField("key", store.KeyGame).Debug("saved game")
	return nil
}

// Resume starts the clock. Calling it while already running replaces the
// old subscription.
func (s *Session) Resume() {
	s.stopTicker()
	s.ticker = s.clock.NewTicker(TickInterval)
}

// Suspend stops the clock and saves. Failures are logged, not returned, so
// it can run on the way out.
func (s *Session) Suspend(ctx context.Context) {
	if err := s.Save(ctx); err != nil {
		s.log.WithError(err).Error("could not save game")
	}
}

// Running reports whether the clock is subscribed.
func (s *Session) Running() bool { return s.ticker != nil }

// Ticks is the channel of the current clock subscription, or nil while
// suspended. A nil channel blocks forever in a select.
func (s *Session) Ticks() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}

// HandleTick advances the game clock by one second.
func (s *Session) HandleTick() {
	if s.game.IsComplete() {
		return
	}
	s.game.Tick()
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// NewGame throws the current game away and deals again.
func (s *Session) NewGame() {
	s.game.NewGame(s.rng)
	s.log.Debug("dealt new game")
}

// DrawOrRecycle draws from the stock or turns the talon over.
func (s *Session) DrawOrRecycle() solitaire.DrawResult {
	result := s.game.DrawOrRecycle()
	s.log.WithField("result", result).Debug("draw")
	return result
}

// Tap auto-moves the card with the given identity. It reports whether
// anything moved.
func (s *Session) Tap(id card.ID) bool {
	for _, p := range s.game.Cards() {
		if p.Card.ID == id {
			return s.tap(p.Card)
		}
	}
	return false
}

// TapCode auto-moves the face-up card named by code, e.g. "7s" or "Kh".
func (s *Session) TapCode(code string) (bool, error) {
	rank, suit, err := card.Parse(code)
	if err != nil {
		return false, err
	}
	c, ok := s.visible(rank, suit)
	if !ok {
		return false, fmt.Errorf("%s: %w", code, ErrNotVisible)
	}
	return s.tap(c), nil
}

func (s *Session) tap(c card.Card) bool {
	from, _, ok := s.game.Locate(c)
	if !ok {
		return false
	}
	to, ok := s.game.AutoMoveTo(c)
	log := s.log.WithFields(logrus.Fields{"card": c.Code(), "from": from})
	if !ok {
		log.Debug("no legal move")
		return false
	}
	delta := s.award(from, to)
	log.WithFields(logrus.Fields{"to": to, "points": delta}).Debug("moved")
	return true
}

// visible finds a card a player could tap: face-up tableau cards, the talon
// top and the foundation tops.
func (s *Session) visible(rank card.Rank, suit card.Suit) (card.Card, bool) {
	match := func(c card.Card) bool {
		return c.FaceUp && c.Rank == rank && c.Suit == suit
	}
	for i := 0; i < deck.Columns; i++ {
		for _, c := range s.game.Column(i) {
			if match(c) {
				return c, true
			}
		}
	}
	if talon := s.game.Talon(); len(talon) > 0 && match(talon[len(talon)-1]) {
		return talon[len(talon)-1], true
	}
	if f := s.game.Foundation(suit); len(f) > 0 && match(f[len(f)-1]) {
		return f[len(f)-1], true
	}
	return card.Card{}, false
}

func (s *Session) IsComplete() bool { return s.game.IsComplete() }
func (s *Session) Score() int { return s.game.Score() }
func (s *Session) ElapsedDisplay() string { return s.game.ElapsedDisplay() }

// Game gives read access to the current game. Mutate it only through the
// session.
func (s *Session) Game() *solitaire.Game { return s.game }

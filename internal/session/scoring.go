package session

import "github.com/arcanaland/klondike/internal/solitaire"

const (
	PointsToFoundation   = 10
	PointsTalonToTableau = 5
	PointsFromFoundation = -15
)

// Points is the score change for moving cards from one pile to another.
func Points(from, to solitaire.PileRef) int {
	switch {
	case to.Kind == solitaire.Foundation:
		return PointsToFoundation
	case from.Kind == solitaire.Talon && to.Kind == solitaire.Tableau:
		return PointsTalonToTableau
	case from.Kind == solitaire.Foundation && to.Kind == solitaire.Tableau:
		return PointsFromFoundation
	}
	return 0
}

// award applies Points for a move, never letting the score go below zero,
// and returns the change actually made.
func (s *Session) award(from, to solitaire.PileRef) int {
	delta := Points(from, to)
	if score := s.game.Score(); score+delta < 0 {
		delta = -score
	}
	s.game.AddScore(delta)
	return delta
}

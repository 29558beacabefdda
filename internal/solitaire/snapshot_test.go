package solitaire

import (
	"encoding/json"
	"testing"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedGame(t *testing.T) *Game {
	t.Helper()
	g := newDealtGame(t)
	for i := 0; i < 30; i++ {
		g.DrawOrRecycle()
		if talon := g.Talon(); len(talon) > 0 {
			g.AutoMove(talon[len(talon)-1])
		}
	}
	for i := 0; i < 7; i++ {
		for _, c := range g.Column(i) {
			if c.FaceUp {
				g.AutoMove(c)
				break
			}
		}
	}
	g.AddScore(35)
	for i := 0; i < 125; i++ {
		g.Tick()
	}
	return g
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := playedGame(t)

	data, err := g.Marshal()
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, g.Snapshot(), restored.Snapshot())
	assert.Equal(t, g.Score(), restored.Score())
	assert.Equal(t, g.ElapsedSeconds(), restored.ElapsedSeconds())

	// Same identities in the same places with the same faces.
	want, got := g.Cards(), restored.Cards()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestSnapshotRestoredGameIsPlayable(t *testing.T) {
	g := newDealtGame(t)
	restored, err := FromSnapshot(g.Snapshot())
	require.NoError(t, err)

	// Identity survives, so taps on cards from the first game still resolve.
	top := g.Column(3)[3]
	_, _, ok := restored.Locate(top)
	assert.True(t, ok)

	assert.Equal(t, g.DrawOrRecycle(), restored.DrawOrRecycle())
	assert.Equal(t, g.Snapshot(), restored.Snapshot())
}

func TestUnmarshalRejectsCorruptData(t *testing.T) {
	good := newDealtGame(t).Snapshot()

	mutate := func(f func(s *Snapshot)) []byte {
		data, err := json.Marshal(good)
		require.NoError(t, err)
		var s Snapshot
		require.NoError(t, json.Unmarshal(data, &s))
		f(&s)
		out, err := json.Marshal(s)
		require.NoError(t, err)
		return out
	}

	tests := map[string][]byte{
		"not json":        []byte("{{{"),
		"empty":           []byte(""),
		"wrong version":   mutate(func(s *Snapshot) { s.Version = 99 }),
		"missing columns": mutate(func(s *Snapshot) { s.Tableau = s.Tableau[:6] }),
		"bad id":          mutate(func(s *Snapshot) { s.Stock[0].ID = "nope" }),
		"bad rank":        mutate(func(s *Snapshot) { s.Stock[0].Rank = 14 }),
		"bad suit":        mutate(func(s *Snapshot) { s.Stock[0].Suit = "star" }),
		"duplicate card":  mutate(func(s *Snapshot) { s.Talon = append(s.Talon, s.Stock[0]) }),
		"lost card":       mutate(func(s *Snapshot) { s.Stock = s.Stock[1:] }),
		"bad foundation":  mutate(func(s *Snapshot) { s.Foundations["moon"] = nil }),
		"negative time":   mutate(func(s *Snapshot) { s.ElapsedSeconds = -1 }),
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(data)
			assert.Error(t, err)
		})
	}
}

func TestSnapshotFoundationsBySuitName(t *testing.T) {
	g := &Game{}
	g.foundations[card.Club] = []card.Card{up(card.Ace, card.Club)}
	s := g.Snapshot()
	require.Len(t, s.Foundations["club"], 1)
	assert.Equal(t, 1, s.Foundations["club"][0].Rank)
	assert.Empty(t, s.Foundations["heart"])
}

func TestFromSnapshotTurnsHiddenTableauTopFaceUp(t *testing.T) {
	s := newDealtGame(t).Snapshot()
	for i := range s.Tableau {
		s.Tableau[i][len(s.Tableau[i])-1].FaceUp = false
	}

	g, err := FromSnapshot(s)
	require.NoError(t, err)
	assertInvariants(t, g)
	for i := 0; i < 7; i++ {
		column := g.Column(i)
		assert.False(t, column[0].FaceUp && len(column) > 1, "only the top of tableau[%d] turns", i)
	}
}

package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/klondike/internal/clock"
	"github.com/arcanaland/klondike/internal/render"
	"github.com/arcanaland/klondike/internal/session"
	"github.com/arcanaland/klondike/internal/solitaire"
	"github.com/arcanaland/klondike/internal/store"
)

type zeroRNG struct{}

func (zeroRNG) Intn(int) int { return 0 }

func newPlayer(t *testing.T) (*player, *store.MemoryStore, *bytes.Buffer) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	st := store.NewMemoryStore()
	var out bytes.Buffer
	return &player{
		session:  session.New(st, clock.NewManual(time.Time{}), zeroRNG{}, logger),
		out:      &out,
		renderer: &render.Renderer{Out: &out, Width: 80, Plain: true},
	}, st, &out
}

func feed(lines ...string) <-chan string {
	ch := make(chan string, len(lines))
	for _, l := range lines {
		ch <- l
	}
	close(ch)
	return ch
}

func TestPlayQuitSaves(t *testing.T) {
	p, st, out := newPlayer(t)
	require.NoError(t, p.run(context.Background(), feed("d", "q", "d")))

	data, err := st.Get(context.Background(), store.KeyGame)
	require.NoError(t, err)
	g, err := solitaire.Unmarshal(data)
	require.NoError(t, err)
	assert.Len(t, g.Talon(), 1, "only the draw before quitting counts")
	assert.False(t, p.session.Running())
	assert.Contains(t, out.String(), "Score: 0")
}

func TestPlayEndOfInputSaves(t *testing.T) {
	p, st, _ := newPlayer(t)
	require.NoError(t, p.run(context.Background(), feed("d", "d")))

	data, err := st.Get(context.Background(), store.KeyGame)
	require.NoError(t, err)
	g, err := solitaire.Unmarshal(data)
	require.NoError(t, err)
	assert.Len(t, g.Talon(), 2)
}

func TestPlayInterruptSaves(t *testing.T) {
	p, st, _ := newPlayer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.run(ctx, make(chan string)))
	_, err := st.Get(context.Background(), store.KeyGame)
	assert.NoError(t, err)
}

func TestPlayReportsBadInput(t *testing.T) {
	p, _, out := newPlayer(t)
	require.NoError(t, p.run(context.Background(), feed("zz", "t", "help")))

	assert.Contains(t, out.String(), "invalid card code")
	assert.Contains(t, out.String(), "Usage: t <card>")
	assert.Contains(t, out.String(), "new game")
}

// endless never runs out of lines.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	n := copy(p, "d\n")
	return n, nil
}

func TestReadLinesStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, endless{})
	assert.Equal(t, "d", <-lines)
	cancel()

	done := make(chan struct{})
	go func() {
		for range lines {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine kept running after cancel")
	}
}

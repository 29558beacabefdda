// Package clock supplies the once-per-second tick that drives the game
// timer. Manual lets tests fire ticks by hand.
package clock

import (
	"sync"
	"time"
)

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock makes tickers.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Real is backed by time.Ticker.
type Real struct{}

func (Real) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop() { r.t.Stop() }

// Manual hands out tickers that only tick when Fire is called.
type Manual struct {
	mu      sync.Mutex
	tickers []*manualTicker
	now     time.Time
}

// NewManual starts the manual clock at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{c: make(chan time.Time, 1), period: d}
	m.tickers = append(m.tickers, t)
	return t
}

// Fire advances every live ticker by one period. A tick is dropped when
// the previous one has not been received yet, the same as time.Ticker.
func (m *Manual) Fire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	live := m.tickers[:0]
	for _, t := range m.tickers {
		if t.stopped() {
			continue
		}
		m.now = m.now.Add(t.period)
		select {
		case t.c <- m.now:
		default:
		}
		live = append(live, t)
	}
	m.tickers = live
}

// Active counts tickers that have not been stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tickers {
		if !t.stopped() {
			n++
		}
	}
	return n
}

type manualTicker struct {
	c      chan time.Time
	period time.Duration

	mu   sync.Mutex
	done bool
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.done = true
	t.mu.Unlock()
}

func (t *manualTicker) stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFire(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)
	tk := m.NewTicker(time.Second)
	assert.Equal(t, 1, m.Active())

	select {
	case <-tk.C():
		t.Fatal("tick before Fire")
	default:
	}

	m.Fire()
	select {
	case got := <-tk.C():
		assert.Equal(t, start.Add(time.Second), got)
	default:
		t.Fatal("expected a tick")
	}
}

func TestManualDropsUnreadTicks(t *testing.T) {
	m := NewManual(time.Time{})
	tk := m.NewTicker(time.Second)
	m.Fire()
	m.Fire()
	m.Fire()

	<-tk.C()
	select {
	case <-tk.C():
		t.Fatal("buffered more than one tick")
	default:
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual(time.Time{})
	tk := m.NewTicker(time.Second)
	tk.Stop()
	assert.Equal(t, 0, m.Active())

	m.Fire()
	select {
	case <-tk.C():
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestRealTicks(t *testing.T) {
	tk := Real{}.NewTicker(5 * time.Millisecond)
	defer tk.Stop()
	select {
	case <-tk.C():
	case <-time.After(2 * time.Second):
		require.Fail(t, "real ticker never fired")
	}
}

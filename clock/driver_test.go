package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/waozixyz/clok/render"
)

type countingHost struct{ redraws int }

func (h *countingHost) RequestRedraw() { h.redraws++ }

func TestDriverTransitions(t *testing.T) {
	host := &countingHost{}
	d := NewDriver(host, 10)
	require.Equal(t, Idle, d.State())

	d.Tick()
	require.Equal(t, Scheduled, d.State())
	require.Equal(t, 1, host.redraws)

	d.Painted()
	require.Equal(t, Idle, d.State())

	d.Tick()
	require.Equal(t, 2, host.redraws)
}

func TestDriverCoalescesTicks(t *testing.T) {
	host := &countingHost{}
	d := NewDriver(host, 10)

	d.Tick()
	d.Tick()
	d.Tick()
	require.Equal(t, 1, host.redraws)
	require.Equal(t, 1, d.Requests())

	d.Painted()
	d.Painted()
	require.Equal(t, Idle, d.State())
}

func TestDriverWithoutHost(t *testing.T) {
	d := NewDriver(nil, 5)
	require.NotPanics(t, d.Tick)
	require.Equal(t, Scheduled, d.State())
	require.Equal(t, "scheduled", d.State().String())
}

func TestInterval(t *testing.T) {
	require.Equal(t, 100*time.Millisecond, Interval(10))
	require.Equal(t, 33*time.Millisecond, Interval(30))
	require.Equal(t, time.Second, Interval(1))
	require.Equal(t, time.Second, Interval(0))
	require.Equal(t, time.Millisecond, Interval(5000))
	require.Equal(t, 50*time.Millisecond, NewDriver(nil, 20).Interval())
}

func TestPresentRateCoversEveryValidHz(t *testing.T) {
	for _, hz := range []int{1, 10, 60, 61, 250, 1000} {
		fps := render.PresentRate(Interval(hz))
		require.GreaterOrEqualf(t, fps, hz, "hz %d", hz)
	}
}

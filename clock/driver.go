package clock

import (
	"time"

	"github.com/waozixyz/clok/render"
)

// DriverState is the frame driver's state.
type DriverState uint8

const (
	// Idle means no redraw is outstanding.
	Idle DriverState = iota
	// Scheduled means a redraw was requested and has not been painted yet.
	Scheduled
)

func (s DriverState) String() string {
	if s == Scheduled {
		return "scheduled"
	}
	return "idle"
}

// Driver turns host timer ticks into redraw requests. It never draws.
type Driver struct {
	host     render.RedrawRequester
	state    DriverState
	interval time.Duration
	requests int
}

// NewDriver returns an idle driver ticking hz times per second.
func NewDriver(host render.RedrawRequester, hz int) *Driver {
	return &Driver{host: host, interval: Interval(hz)}
}

// Interval returns the tick period for hz, truncated to whole milliseconds.
func Interval(hz int) time.Duration {
	if hz <= 0 {
		hz = 1
	}
	ms := 1000 / hz
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// Interval returns the configured tick period.
func (d *Driver) Interval() time.Duration { return d.interval }

// State returns the current state.
func (d *Driver) State() DriverState { return d.state }

// Requests returns how many redraws have been asked of the host.
func (d *Driver) Requests() int { return d.requests }

// Tick handles one timer tick. A tick while a redraw is already pending
// is absorbed by that redraw.
func (d *Driver) Tick() {
	if d.state == Scheduled {
		return
	}
	d.state = Scheduled
	d.requests++
	if d.host != nil {
		d.host.RequestRedraw()
	}
}

// Painted records that the host ran the paint path.
func (d *Driver) Painted() {
	d.state = Idle
}

package clock

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/waozixyz/clok/layer"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/render/rendertest"
	"github.com/waozixyz/clok/theme"
)

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

func TestClockPaintPath(t *testing.T) {
	rec := &rendertest.Recorder{}
	set, fakes := fakeSet(rec, allElements()...)
	host := &countingHost{}
	k := New(Config{Layers: set, Host: host, Hz: 10, Time: &fixedTime{at(3, 0, 0, 0)}})

	k.OnTick()
	require.Equal(t, Scheduled, k.Driver().State())

	c := render.NewCanvas(render.NewSurface(200, 200))
	k.OnPaint(c, 200, 200)
	require.Equal(t, Idle, k.Driver().State())
	require.Equal(t, 1, host.redraws)

	names := rec.Names()
	require.Len(t, names, 12)
	require.Equal(t, "CLOCK_DROP_SHADOW", names[0])
	require.Equal(t, "CLOCK_FRAME", names[5])
	require.Equal(t, "CLOCK_HOUR_HAND_SHADOW", names[6])

	rec.Reset()
	k.OnPaint(c, 200, 200)
	require.Len(t, rec.Calls, 6, "second frame only redraws hands")
	require.Equal(t, 1, fakes[layer.Face].Renders)
	require.Equal(t, 1, k.Compositor().Count())

	k.OnPaint(c, 200, 260)
	require.Equal(t, 2, fakes[layer.Face].Renders)
	require.Equal(t, 2, k.Cache().Rebuilds())
	require.Equal(t, 3, k.Frames())
}

func TestClockPaintsBackgroundUnderHands(t *testing.T) {
	face := svgDisc(t, "#0000ff", 50)
	hand := svgDisc(t, "#ff0000", 10) // pivot disc at the hand origin
	set := theme.NewLayerSet(map[layer.Element]render.Layer{
		layer.DropShadow: svgDisc(t, "#000000", 1),
		layer.Face:       face,
		layer.HourHand:   hand,
		layer.MinuteHand: svgDisc(t, "#ff0000", 1),
	})
	k := New(Config{Layers: set, Hz: 10, Time: &fixedTime{at(3, 0, 0, 0)}})

	out := render.NewSurface(100, 100)
	k.OnPaint(render.NewCanvas(out), 100, 100)

	img := out.Image()
	require.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(10, 50), "face at the left edge")
	// At three o'clock the hour hand document is unrotated with its origin
	// on the pivot, so its disc is centred on the bottom right corner.
	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(97, 97))
}

func TestClockIgnoresEmptyPaintAndClose(t *testing.T) {
	set, fakes := fakeSet(nil, allElements()...)
	k := New(Config{Layers: set, Hz: 10})

	k.OnPaint(render.NewCanvas(render.NewSurface(1, 1)), 0, 0)
	require.Zero(t, k.Frames())

	k.OnPaint(render.NewCanvas(render.NewSurface(10, 10)), 10, 10)
	k.OnQuit()
	k.Close()
	k.Close()
	require.True(t, fakes[layer.Face].Released)

	k.OnPaint(render.NewCanvas(render.NewSurface(10, 10)), 10, 10)
	require.Equal(t, 1, k.Frames())
}

func TestSystemTimeIsLocal(t *testing.T) {
	require.Equal(t, time.Local, SystemTime{}.Now().Location())
	require.Equal(t, 100*time.Millisecond, New(Config{Layers: theme.NewLayerSet(nil), Hz: 10}).Interval())
}

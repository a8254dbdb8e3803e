// Package rendertest provides a recording render.Layer for tests.
package rendertest

import (
	"github.com/srwiley/rasterx"

	"github.com/waozixyz/clok/render"
)

// Call is one recorded Render.
type Call struct {
	Layer    string
	Matrix   rasterx.Matrix2D
	Viewport render.Viewport
	Depth    int // canvas save depth during the call
}

// Recorder collects calls across layers in the order they happened.
type Recorder struct {
	Calls []Call
}

// Names returns the layer names in call order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Layer
	}
	return names
}

// Reset forgets all calls.
func (r *Recorder) Reset() { r.Calls = nil }

// Layer is a fake render.Layer.
type Layer struct {
	Name     string
	Width    float64 // intrinsic size; zero means none
	Height   float64
	Err      error // returned from every Render
	Rec      *Recorder
	Renders  int
	Released bool
}

// New returns a layer named name that records into rec.
func New(name string, rec *Recorder) *Layer {
	return &Layer{Name: name, Rec: rec}
}

func (l *Layer) Render(c *render.Canvas, vp render.Viewport) error {
	l.Renders++
	if l.Rec != nil {
		l.Rec.Calls = append(l.Rec.Calls, Call{
			Layer:    l.Name,
			Matrix:   c.Matrix(),
			Viewport: vp,
			Depth:    c.Depth(),
		})
	}
	return l.Err
}

func (l *Layer) IntrinsicSize() (float64, float64, bool) {
	return l.Width, l.Height, l.Width > 0 && l.Height > 0
}

func (l *Layer) Release() { l.Released = true }

package theme

import (
	"math"

	"github.com/waozixyz/clok/layer"
	"github.com/waozixyz/clok/render"
)

// Geometry is the logical coordinate space every layer is authored in.
type Geometry struct {
	Width  float64
	Height float64
}

// DefaultGeometry is used when the drop shadow gives no size.
var DefaultGeometry = Geometry{Width: render.BaseSize, Height: render.BaseSize}

// Viewport returns the rectangle (0, 0, Width, Height).
func (g Geometry) Viewport() render.Viewport {
	return render.Viewport{Width: g.Width, Height: g.Height}
}

// LayerSet maps each element to its loaded layer. A missing entry means the
// theme does not provide that optional layer. The set owns its layers.
type LayerSet struct {
	layers   map[layer.Element]render.Layer
	geometry Geometry
	released bool
}

// NewLayerSet builds a set from already loaded layers and derives the
// geometry from the drop shadow, as Load does.
func NewLayerSet(layers map[layer.Element]render.Layer) *LayerSet {
	s := &LayerSet{layers: make(map[layer.Element]render.Layer, len(layers))}
	for e, l := range layers {
		if l != nil && e.Valid() {
			s.layers[e] = l
		}
	}
	s.geometry = geometryFrom(s.layers[layer.DropShadow])
	return s
}

func geometryFrom(shadow render.Layer) Geometry {
	if shadow == nil {
		return DefaultGeometry
	}
	w, h, ok := shadow.IntrinsicSize()
	if !ok || w <= 0 || h <= 0 {
		return DefaultGeometry
	}
	return Geometry{Width: math.Ceil(w), Height: math.Ceil(h)}
}

// Get returns the layer for e, or false when the slot is empty.
func (s *LayerSet) Get(e layer.Element) (render.Layer, bool) {
	if s == nil || s.released {
		return nil, false
	}
	l, ok := s.layers[e]
	return l, ok
}

// Has reports whether e is present.
func (s *LayerSet) Has(e layer.Element) bool {
	_, ok := s.Get(e)
	return ok
}

// Len returns the number of present layers.
func (s *LayerSet) Len() int {
	if s == nil || s.released {
		return 0
	}
	return len(s.layers)
}

// Geometry returns the logical clock size.
func (s *LayerSet) Geometry() Geometry {
	if s == nil {
		return DefaultGeometry
	}
	return s.geometry
}

// Release releases every layer. Later calls do nothing.
func (s *LayerSet) Release() {
	if s == nil || s.released {
		return
	}
	for e, l := range s.layers {
		l.Release()
		delete(s.layers, e)
	}
	s.released = true
}

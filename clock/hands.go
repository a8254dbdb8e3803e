package clock

import (
	"math"
	"time"

	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/layer"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/theme"
)

// shadowOffset is how far a hand shadow is shifted, in device pixels.
const shadowOffset = 1.0

// HandRenderer draws the dynamic pass. Nothing it draws is cached.
type HandRenderer struct {
	layers *theme.LayerSet
	log    *logger.Logger
}

// NewHandRenderer returns a renderer for the hand layers of layers.
func NewHandRenderer(layers *theme.LayerSet, log *logger.Logger) *HandRenderer {
	return &HandRenderer{layers: layers, log: log}
}

// Draw paints the hands and their shadows for now over whatever c holds.
func (h *HandRenderer) Draw(c *render.Canvas, width, height int, now time.Time) {
	angles := AnglesAt(now)
	geo := h.layers.Geometry()
	vp := geo.Viewport()

	c.Save()
	defer c.Restore()

	c.Translate(float64(width)/2, float64(height)/2)
	c.Scale(float64(width)/geo.Width, float64(height)/geo.Height)
	// Theme hands point at three o'clock; turn zero to twelve.
	c.Rotate(-math.Pi / 2)

	for _, e := range layer.DynamicPass() {
		l, ok := h.layers.Get(e)
		if !ok {
			continue
		}

		c.Save()
		if layer.IsShadow(e) {
			c.Translate(deviceOffset(c, shadowOffset, shadowOffset))
		}
		c.Rotate(angles.For(layer.HandOf(e)))
		if err := l.Render(c, vp); err != nil {
			h.log.WithFields(map[string]any{"layer": e.String()}).Warn(err, "failed to render layer")
		}
		c.Restore()
	}
}

// deviceOffset returns the user-space vector that moves by (dx, dy)
// device pixels under the current transform of c.
func deviceOffset(c *render.Canvas, dx, dy float64) (float64, float64) {
	m := c.Matrix()
	if m.A*m.D-m.B*m.C == 0 {
		return 0, 0
	}
	return m.Invert().TransformVector(dx, dy)
}

package clock

import (
	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/layer"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/theme"
)

// Compositor draws the static pass: everything that depends on the
// output size but not on the time.
type Compositor struct {
	layers *theme.LayerSet
	log    *logger.Logger
	count  int
}

// NewCompositor returns a compositor for layers.
func NewCompositor(layers *theme.LayerSet, log *logger.Logger) *Compositor {
	return &Compositor{layers: layers, log: log}
}

// ComposeStatic clears c and draws the static layers scaled from the
// theme geometry to width x height. Absent layers are skipped. A layer
// that fails to draw is logged and skipped for this call only.
func (p *Compositor) ComposeStatic(c *render.Canvas, width, height int) {
	p.count++
	geo := p.layers.Geometry()

	c.Save()
	defer c.Restore()

	c.Scale(float64(width)/geo.Width, float64(height)/geo.Height)
	c.Clear()

	vp := geo.Viewport()
	for _, e := range layer.StaticPass() {
		l, ok := p.layers.Get(e)
		if !ok {
			continue
		}
		if err := l.Render(c, vp); err != nil {
			p.log.WithFields(map[string]any{"layer": e.String()}).Warn(err, "failed to render layer")
		}
	}
}

// Count returns how many times ComposeStatic has run.
func (p *Compositor) Count() int { return p.count }

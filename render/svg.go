package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var errReleased = errors.New("layer released")

// SVGLayer is a parsed SVG document drawn with rasterx.
type SVGLayer struct {
	icon *oksvg.SvgIcon
	name string
}

// LoadSVG parses the SVG file at path. Elements the parser does not
// support are skipped rather than failing the load.
func LoadSVG(path string) (*SVGLayer, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%s: document has no size", path)
	}
	return &SVGLayer{icon: icon, name: path}, nil
}

// ReadSVG parses an SVG document from r. name is used in error messages.
func ReadSVG(name string, r io.Reader) (*SVGLayer, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%s: document has no size", name)
	}
	return &SVGLayer{icon: icon, name: name}, nil
}

// IntrinsicSize returns the size of the document's view box.
func (l *SVGLayer) IntrinsicSize() (float64, float64, bool) {
	if l.icon == nil {
		return 0, 0, false
	}
	vb := l.icon.ViewBox
	return vb.W, vb.H, vb.W > 0 && vb.H > 0
}

// Render fits the document into vp, keeping its aspect ratio and centring
// it, and draws it through the canvas transform.
func (l *SVGLayer) Render(c *Canvas, vp Viewport) (err error) {
	if l.icon == nil {
		return fmt.Errorf("%s: %w", l.name, errReleased)
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("%s: empty viewport %gx%g", l.name, vp.Width, vp.Height)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: rasterizer panic: %v", l.name, r)
		}
	}()

	vb := l.icon.ViewBox
	s := math.Min(vp.Width/vb.W, vp.Height/vb.H)
	fit := rasterx.Matrix2D{
		A: s,
		D: s,
		E: vp.X + (vp.Width-vb.W*s)/2 - vb.X*s,
		F: vp.Y + (vp.Height-vb.H*s)/2 - vb.Y*s,
	}

	l.icon.Transform = c.Matrix().Mult(fit)
	l.icon.Draw(c.rasterizer(), 1.0)
	return nil
}

// Release drops the parsed document.
func (l *SVGLayer) Release() {
	l.icon = nil
}

package render

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Canvas is a drawing context over a Surface. It keeps a current
// transformation matrix (user space to device pixels) and a save/restore
// stack of it, in the manner of a cairo context. Canvas is not safe for
// concurrent use.
type Canvas struct {
	target *image.RGBA
	ctm    rasterx.Matrix2D
	stack  []rasterx.Matrix2D
	dasher *rasterx.Dasher
}

// NewCanvas returns a context drawing onto s with the identity transform.
func NewCanvas(s *Surface) *Canvas {
	img := s.Image()
	if img == nil {
		img = image.NewRGBA(image.Rectangle{})
	}
	return &Canvas{target: img, ctm: rasterx.Identity}
}

// Target returns the image being drawn on.
func (c *Canvas) Target() *image.RGBA { return c.target }

// Size returns the target size in device pixels.
func (c *Canvas) Size() (width, height int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the transform pushed by the matching Save. An unbalanced
// Restore leaves the transform unchanged.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.ctm = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Depth returns the number of saved states.
func (c *Canvas) Depth() int { return len(c.stack) }

// Matrix returns the current transform.
func (c *Canvas) Matrix() rasterx.Matrix2D { return c.ctm }

// Translate moves the user-space origin by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.ctm = c.ctm.Translate(x, y)
}

// Scale scales user space by (sx, sy).
func (c *Canvas) Scale(sx, sy float64) {
	c.ctm = c.ctm.Scale(sx, sy)
}

// Rotate turns user space by theta radians. Positive angles turn the x
// axis towards the y axis, which is clockwise on screen.
func (c *Canvas) Rotate(theta float64) {
	c.ctm = c.ctm.Rotate(theta)
}

// Clear sets every pixel of the target to transparent, ignoring the transform.
func (c *Canvas) Clear() {
	draw.Draw(c.target, c.target.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// PaintSurface composites s over the target with its top-left corner at
// user-space (x, y). Only the translation of the transform applies.
func (c *Canvas) PaintSurface(s *Surface, x, y float64) {
	src := s.Image()
	if src == nil {
		return
	}
	dx, dy := c.ctm.Transform(x, y)
	at := image.Pt(int(math.Round(dx)), int(math.Round(dy)))
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(c.target, r, src, src.Bounds().Min, draw.Over)
}

// CreateSimilar allocates a transparent surface suitable for caching
// content that is later painted onto this canvas.
func (c *Canvas) CreateSimilar(width, height int) *Surface {
	return NewSurface(width, height)
}

// rasterizer returns the dasher used to fill and stroke paths on the target.
func (c *Canvas) rasterizer() *rasterx.Dasher {
	if c.dasher == nil {
		w, h := c.Size()
		scanner := rasterx.NewScannerGV(w, h, c.target, c.target.Bounds())
		c.dasher = rasterx.NewDasher(w, h, scanner)
	}
	return c.dasher
}

package render

import (
	"image"
	"image/color"
)

// Surface is an RGBA raster with premultiplied alpha, transparent when new.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a transparent width x height surface.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// WrapSurface uses img as the backing store of a surface.
func WrapSurface(img *image.RGBA) *Surface {
	return &Surface{img: img}
}

// Size returns the surface dimensions. A released surface is 0x0.
func (s *Surface) Size() (width, height int) {
	if s == nil || s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image, or nil after Release.
func (s *Surface) Image() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.img
}

// Release drops the pixel buffer.
func (s *Surface) Release() {
	if s != nil {
		s.img = nil
	}
}

// Released reports whether Release has been called.
func (s *Surface) Released() bool {
	return s == nil || s.img == nil
}

// Pixels writes the surface as straight-alpha RGBA into dst, growing it if
// needed, and returns it. Window toolkits upload this layout directly.
func (s *Surface) Pixels(dst []color.RGBA) []color.RGBA {
	img := s.Image()
	if img == nil {
		return dst[:0]
	}
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
			dst[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
			i++
		}
	}
	return dst
}

package clock

import (
	"github.com/waozixyz/clok/render"
)

// ComposeFunc draws a background of width x height into c.
type ComposeFunc func(c *render.Canvas, width, height int)

// BackgroundCache keeps the composed static layers for the last requested
// output size. It is the only way the paint path obtains the background.
type BackgroundCache struct {
	compose  ComposeFunc
	surface  *render.Surface
	width    int
	height   int
	rebuilds int
}

// NewBackgroundCache returns an empty cache that fills itself with compose.
func NewBackgroundCache(compose ComposeFunc) *BackgroundCache {
	return &BackgroundCache{compose: compose}
}

// EnsureFresh returns the background for width x height, composing it
// only when there is no cached surface of exactly that size. The old
// surface is released before the new one is allocated.
func (b *BackgroundCache) EnsureFresh(c *render.Canvas, width, height int) *render.Surface {
	if b.Valid(width, height) {
		return b.surface
	}

	b.Release()
	surface := c.CreateSimilar(width, height)
	b.compose(render.NewCanvas(surface), width, height)

	b.surface = surface
	b.width, b.height = width, height
	b.rebuilds++
	return surface
}

// Valid reports whether the cached surface was built for width x height.
func (b *BackgroundCache) Valid(width, height int) bool {
	return b.surface != nil && b.width == width && b.height == height
}

// Rebuilds returns how many surfaces have been composed.
func (b *BackgroundCache) Rebuilds() int { return b.rebuilds }

// Release drops the cached surface.
func (b *BackgroundCache) Release() {
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	b.width, b.height = 0, 0
}

package clock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waozixyz/clok/render"
)

type composeCounter struct {
	calls [][2]int
}

func (c *composeCounter) compose(cv *render.Canvas, w, h int) {
	c.calls = append(c.calls, [2]int{w, h})
	cv.Target().Pix[3] = 0xff
}

func TestCacheHitDoesNotRecompose(t *testing.T) {
	counter := &composeCounter{}
	cache := NewBackgroundCache(counter.compose)
	target := render.NewCanvas(render.NewSurface(300, 200))

	first := cache.EnsureFresh(target, 300, 200)
	second := cache.EnsureFresh(target, 300, 200)

	require.Same(t, first, second)
	require.Len(t, counter.calls, 1)
	require.Equal(t, 1, cache.Rebuilds())

	w, h := first.Size()
	require.Equal(t, 300, w)
	require.Equal(t, 200, h)
}

func TestCacheRebuildsOncePerSizeChange(t *testing.T) {
	counter := &composeCounter{}
	cache := NewBackgroundCache(counter.compose)
	target := render.NewCanvas(render.NewSurface(1, 1))

	old := cache.EnsureFresh(target, 300, 300)
	fresh := cache.EnsureFresh(target, 300, 301)
	again := cache.EnsureFresh(target, 300, 301)

	require.True(t, old.Released(), "replaced surface is released")
	require.False(t, fresh.Released())
	require.Same(t, fresh, again)
	require.Equal(t, [][2]int{{300, 300}, {300, 301}}, counter.calls)
	require.True(t, cache.Valid(300, 301))
	require.False(t, cache.Valid(300, 300))
}

func TestCacheComposesIntoOwnSurface(t *testing.T) {
	counter := &composeCounter{}
	cache := NewBackgroundCache(counter.compose)
	target := render.NewCanvas(render.NewSurface(8, 8))

	bg := cache.EnsureFresh(target, 8, 8)

	require.Equal(t, uint8(0xff), bg.Image().Pix[3])
	require.Zero(t, target.Target().Pix[3], "target untouched by composition")
}

func TestCacheRelease(t *testing.T) {
	counter := &composeCounter{}
	cache := NewBackgroundCache(counter.compose)
	target := render.NewCanvas(render.NewSurface(1, 1))

	bg := cache.EnsureFresh(target, 10, 10)
	cache.Release()
	require.True(t, bg.Released())
	require.False(t, cache.Valid(10, 10))

	cache.EnsureFresh(target, 10, 10)
	require.Equal(t, 2, cache.Rebuilds())
}

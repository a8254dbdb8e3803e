// render/render.go
package render

import (
	"image/color"
	"time"
)

const (
	// BaseSize is the logical clock size used when a theme gives no hint.
	BaseSize = 400
)

// Viewport is the user-space rectangle a layer document is fitted into.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// Layer is a loaded vector asset that draws itself through a Canvas using
// the canvas's current transformation.
type Layer interface {
	Render(c *Canvas, vp Viewport) error

	// IntrinsicSize returns the document size in pixels, if it declares one.
	IntrinsicSize() (width, height float64, ok bool)

	Release()
}

// WindowConfig holds the window settings the host is created with.
type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	Resizable    bool
	Transparent  bool
	Undecorated  bool
	KeepAspect   bool          // paint a centred square inside the window
	TickInterval time.Duration // how often the host calls App.OnTick
	DefaultBg    color.RGBA
}

// DefaultWindowConfig returns the settings of a fresh clock window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:        BaseSize,
		Height:       BaseSize,
		Title:        "clok",
		Resizable:    true,
		Transparent:  true,
		Undecorated:  true,
		KeepAspect:   true,
		TickInterval: 100 * time.Millisecond,
		DefaultBg:    color.RGBA{},
	}
}

// CenteredSquare returns the largest square that fits a width x height
// window and its top-left corner when centred.
func CenteredSquare(width, height int) (x, y, side int) {
	side = min(width, height)
	if side < 0 {
		side = 0
	}
	return (width - side) / 2, (height - side) / 2, side
}

// MinPresentRate is the lowest frame rate a host presents at.
const MinPresentRate = 60

// PresentRate returns the frames per second a host must run at to deliver
// one tick per tick interval, never below MinPresentRate.
func PresentRate(tick time.Duration) int {
	if tick <= 0 {
		return MinPresentRate
	}
	fps := int((time.Second + tick - 1) / tick)
	return max(fps, MinPresentRate)
}

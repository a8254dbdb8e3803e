package render

// Host is a windowing backend. It owns the event loop and calls back into
// an App from a single goroutine.
type Host interface {
	// Init creates the window.
	Init(config WindowConfig) error

	// Run delivers ticks and paints to app until the user quits.
	Run(app App) error

	// RequestRedraw asks for one OnPaint. Requests made before the paint
	// happens collapse into that paint.
	RequestRedraw()

	// Size returns the current window size in pixels.
	Size() (width, height int)

	// Cleanup releases host resources and closes the window.
	Cleanup()
}

// App is the callback surface a Host drives.
type App interface {
	// OnTick is called at the configured tick interval.
	OnTick()

	// OnPaint draws a frame of width x height pixels into c.
	OnPaint(c *Canvas, width, height int)

	// OnQuit is called once when the loop ends.
	OnQuit()
}

// RedrawRequester is the part of a Host a frame driver needs.
type RedrawRequester interface {
	RequestRedraw()
}

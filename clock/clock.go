package clock

import (
	"sync"
	"time"

	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/theme"
)

// TimeProvider supplies the wall-clock time for each frame.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the system clock in local time.
type SystemTime struct{}

// Now returns the current local time.
func (SystemTime) Now() time.Time { return time.Now() }

// Config wires a Clock.
type Config struct {
	Layers *theme.LayerSet
	Host   render.RedrawRequester
	Hz     int
	Time   TimeProvider // defaults to SystemTime
	Log    *logger.Logger
}

// Clock is the application state: theme layers, background cache, hand
// renderer and frame driver. It implements render.App. All paint path
// calls are serialised by a mutex so hosts may call from any goroutine.
type Clock struct {
	mu         sync.Mutex
	layers     *theme.LayerSet
	compositor *Compositor
	cache      *BackgroundCache
	hands      *HandRenderer
	driver     *Driver
	time       TimeProvider
	log        *logger.Logger
	frames     int
	closed     bool
}

// New builds a Clock. The clock takes ownership of cfg.Layers.
func New(cfg Config) *Clock {
	tp := cfg.Time
	if tp == nil {
		tp = SystemTime{}
	}
	compositor := NewCompositor(cfg.Layers, cfg.Log)
	return &Clock{
		layers:     cfg.Layers,
		compositor: compositor,
		cache:      NewBackgroundCache(compositor.ComposeStatic),
		hands:      NewHandRenderer(cfg.Layers, cfg.Log),
		driver:     NewDriver(cfg.Host, cfg.Hz),
		time:       tp,
		log:        cfg.Log,
	}
}

// OnTick forwards a host timer tick to the frame driver.
func (k *Clock) OnTick() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.driver.Tick()
}

// OnPaint draws one frame: the cached background at the origin, then the
// hands for the current time.
func (k *Clock) OnPaint(c *render.Canvas, width, height int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	defer k.driver.Painted()

	if k.closed || width <= 0 || height <= 0 {
		return
	}

	bg := k.cache.EnsureFresh(c, width, height)
	c.PaintSurface(bg, 0, 0)
	k.hands.Draw(c, width, height, k.time.Now())
	k.frames++
}

// OnQuit logs the end of the run. Resources are freed by Close.
func (k *Clock) OnQuit() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.log.WithFields(map[string]any{"frames": k.frames, "rebuilds": k.cache.Rebuilds()}).Debug("clock stopped")
}

// Close releases the background cache and the layers. It is safe to call
// more than once.
func (k *Clock) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return
	}
	k.cache.Release()
	k.layers.Release()
	k.closed = true
}

// Driver exposes the frame driver.
func (k *Clock) Driver() *Driver { return k.driver }

// Cache exposes the background cache.
func (k *Clock) Cache() *BackgroundCache { return k.cache }

// Compositor exposes the static layer compositor.
func (k *Clock) Compositor() *Compositor { return k.compositor }

// Frames returns the number of frames painted.
func (k *Clock) Frames() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.frames
}

// Interval returns the tick period the host should use.
func (k *Clock) Interval() time.Duration { return k.driver.Interval() }

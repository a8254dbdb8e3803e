// render/raylib/raylib_renderer.go
package raylib

import (
	"fmt"
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/render"
)

var _ render.Host = (*RaylibRenderer)(nil)

// RaylibRenderer implements render.Host on top of a Raylib window. The
// App paints into a CPU surface that is uploaded into a single texture.
type RaylibRenderer struct {
	config  render.WindowConfig
	log     *logger.Logger
	pending bool

	frame   *render.Surface
	texture rl.Texture2D
	pixels  []color.RGBA
	originX int32
	originY int32
}

// NewRaylibRenderer creates a host that logs through log.
func NewRaylibRenderer(log *logger.Logger) *RaylibRenderer {
	return &RaylibRenderer{log: log}
}

// Init opens the Raylib window described by config.
func (r *RaylibRenderer) Init(config render.WindowConfig) error {
	r.config = config

	r.log.WithFields(map[string]any{
		"width":       config.Width,
		"height":      config.Height,
		"title":       config.Title,
		"transparent": config.Transparent,
		"undecorated": config.Undecorated,
	}).Info("RaylibRenderer Init: Initializing window")

	var flags uint32
	if config.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if config.Transparent {
		flags |= rl.FlagWindowTransparent
	}
	if config.Undecorated {
		flags |= rl.FlagWindowUndecorated
	}
	rl.SetConfigFlags(flags)

	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("RaylibRenderer Init: rl.InitWindow failed or window is not ready")
	}

	// Ctrl+Q quits; Escape stays free.
	rl.SetExitKey(rl.KeyNull)
	// The loop reads at most one tick per frame, so it must run at least
	// as fast as the tick rate. Frames are only recomposed on request.
	rl.SetTargetFPS(int32(render.PresentRate(config.TickInterval)))

	r.pending = true
	r.log.Info("RaylibRenderer Init: Raylib window is ready")
	return nil
}

// Run delivers ticks at the configured interval and paints on request
// until the window is closed or Ctrl+Q is pressed.
func (r *RaylibRenderer) Run(app render.App) error {
	if !rl.IsWindowReady() {
		return fmt.Errorf("RaylibRenderer Run: window not initialized")
	}

	interval := r.config.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !r.shouldClose() {
		select {
		case <-ticker.C:
			app.OnTick()
		default:
		}

		if rl.IsWindowResized() {
			r.log.WithFields(map[string]any{
				"width":  rl.GetScreenWidth(),
				"height": rl.GetScreenHeight(),
			}).Debug("Window resized")
			r.pending = true
		}

		if r.pending {
			r.pending = false
			r.paint(app)
		}

		rl.BeginDrawing()
		rl.ClearBackground(r.config.DefaultBg)
		if r.texture.ID > 0 {
			rl.DrawTexture(r.texture, r.originX, r.originY, rl.White)
		}
		rl.EndDrawing()
	}

	app.OnQuit()
	return nil
}

// RequestRedraw marks the frame dirty; it is repainted on the next loop pass.
func (r *RaylibRenderer) RequestRedraw() {
	r.pending = true
}

// Size returns the window size, or the configured size before Init.
func (r *RaylibRenderer) Size() (int, int) {
	if rl.IsWindowReady() {
		return int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
	}
	return r.config.Width, r.config.Height
}

// Cleanup unloads the frame texture and closes the Raylib window.
func (r *RaylibRenderer) Cleanup() {
	r.log.Debug("RaylibRenderer Cleanup: Unloading frame texture")
	if r.texture.ID > 0 {
		rl.UnloadTexture(r.texture)
		r.texture = rl.Texture2D{}
	}
	r.frame.Release()
	r.frame = nil
	r.pixels = nil

	if rl.IsWindowReady() {
		r.log.Debug("RaylibRenderer Cleanup: Closing Raylib window")
		rl.CloseWindow()
	}
}

func (r *RaylibRenderer) shouldClose() bool {
	if rl.WindowShouldClose() {
		return true
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	return ctrl && rl.IsKeyPressed(rl.KeyQ)
}

// paint asks app for a frame sized to the window, or to its centred square
// when KeepAspect is set, and uploads it.
func (r *RaylibRenderer) paint(app render.App) {
	w, h := r.Size()
	x, y := 0, 0
	if r.config.KeepAspect {
		x, y, w = render.CenteredSquare(w, h)
		h = w
	}
	if w <= 0 || h <= 0 {
		return
	}

	if fw, fh := r.frame.Size(); r.frame == nil || fw != w || fh != h {
		r.resizeFrame(w, h)
	}
	r.originX, r.originY = int32(x), int32(y)

	c := render.NewCanvas(r.frame)
	c.Clear()
	app.OnPaint(c, w, h)

	r.pixels = r.frame.Pixels(r.pixels)
	rl.UpdateTexture(r.texture, r.pixels)
}

func (r *RaylibRenderer) resizeFrame(w, h int) {
	if r.texture.ID > 0 {
		rl.UnloadTexture(r.texture)
	}
	r.frame.Release()
	r.frame = render.NewSurface(w, h)

	img := rl.GenImageColor(w, h, rl.Blank)
	r.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	r.log.WithFields(map[string]any{"width": w, "height": h}).Debug("RaylibRenderer: Frame texture recreated")
}

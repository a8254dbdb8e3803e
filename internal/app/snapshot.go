package app

import (
	"image/png"
	"io"
	"time"

	"github.com/waozixyz/clok/clock"
	"github.com/waozixyz/clok/internal/config"
	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/theme"
)

// fixedTime always reports the same instant.
type fixedTime time.Time

func (t fixedTime) Now() time.Time { return time.Time(t) }

// Snapshot renders a single frame of the configured theme at the given
// time through the normal paint path and writes it to w as PNG.
func Snapshot(settings config.Settings, themeRoot string, at time.Time, w io.Writer, log *logger.Logger) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	layers, err := theme.Load(theme.Options{
		Name:        settings.Theme,
		Root:        themeRoot,
		HideSeconds: settings.HideSeconds,
		Log:         log,
	})
	if err != nil {
		return err
	}

	k := clock.New(clock.Config{Layers: layers, Hz: settings.Hz, Time: fixedTime(at), Log: log})
	defer k.Close()

	frame := render.NewSurface(settings.Width, settings.Height)
	k.OnPaint(render.NewCanvas(frame), settings.Width, settings.Height)

	return png.Encode(w, frame.Image())
}

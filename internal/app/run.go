// internal/app/run.go
package app

import (
	"fmt"

	"github.com/waozixyz/clok/clock"
	"github.com/waozixyz/clok/internal/config"
	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/render"
	"github.com/waozixyz/clok/theme"
)

// Options wires one run of the clock.
type Options struct {
	Settings config.Settings
	Store    *config.Store
	Host     render.Host
	Log      *logger.Logger
	Time     clock.TimeProvider // defaults to the system clock
	Open     theme.OpenFunc     // defaults to SVG files
}

// Run loads the theme, drives the host until it quits and persists the
// final window size. A fatal theme error is returned before the window is
// created and nothing is saved. A failed save is only logged.
func Run(opts Options) error {
	log := opts.Log
	settings := opts.Settings

	if err := settings.Validate(); err != nil {
		return err
	}

	root := settings.ThemeRoot(opts.Store.Dir())
	log.WithFields(map[string]any{"theme": settings.Theme, "root": root}).Info("Loading theme")

	layers, err := theme.Load(theme.Options{
		Name:        settings.Theme,
		Root:        root,
		HideSeconds: settings.HideSeconds,
		Open:        opts.Open,
		Log:         log,
	})
	if err != nil {
		log.Error(err, "Cannot load theme")
		return err
	}

	k := clock.New(clock.Config{
		Layers: layers,
		Host:   opts.Host,
		Hz:     settings.Hz,
		Time:   opts.Time,
		Log:    log,
	})
	defer k.Close()

	cfg := render.DefaultWindowConfig()
	cfg.Width = settings.Width
	cfg.Height = settings.Height
	cfg.Title = config.AppName
	cfg.TickInterval = k.Interval()

	if err := opts.Host.Init(cfg); err != nil {
		opts.Host.Cleanup()
		return fmt.Errorf("initialize window: %w", err)
	}

	log.Info("Entering main loop")
	runErr := opts.Host.Run(k)

	if w, h := opts.Host.Size(); w > 0 && h > 0 {
		settings.Width, settings.Height = w, h
	}
	opts.Host.Cleanup()

	if err := opts.Store.Save(settings); err != nil {
		log.Warn(err, "Failed to save configuration")
	}

	log.WithFields(map[string]any{"width": settings.Width, "height": settings.Height}).Info("Exiting")
	return runErr
}

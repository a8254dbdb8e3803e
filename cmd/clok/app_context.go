package main

import (
	"github.com/spf13/cobra"

	"github.com/waozixyz/clok/internal/config"
	"github.com/waozixyz/clok/internal/logger"
)

// runEnv is what every command needs before it does real work.
type runEnv struct {
	log      *logger.Logger
	store    *config.Store
	settings config.Settings
}

// prepare creates the logger, opens the config store and merges the stored
// settings with the flags the user actually passed.
func prepare(cmd *cobra.Command, flags *rootFlags) (*runEnv, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	dir := flags.configDir
	if dir == "" {
		if dir, err = config.DefaultDir(); err != nil {
			return nil, err
		}
	}
	store, err := config.NewStore(dir)
	if err != nil {
		return nil, err
	}

	settings, err := store.Load()
	if err != nil {
		return nil, err
	}
	settings = applyFlags(cmd, flags, settings)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"width":  settings.Width,
		"height": settings.Height,
		"theme":  settings.Theme,
		"hz":     settings.Hz,
	}).Debug("Settings resolved")

	return &runEnv{log: log, store: store, settings: settings}, nil
}

// applyFlags overrides stored values with explicitly set flags only.
func applyFlags(cmd *cobra.Command, flags *rootFlags, s config.Settings) config.Settings {
	changed := cmd.Flags().Changed
	if changed("width") {
		s.Width = flags.width
	}
	if changed("height") {
		s.Height = flags.height
	}
	if changed("theme") {
		s.Theme = flags.theme
	}
	if changed("hz") {
		s.Hz = flags.hz
	}
	s.UserThemes = flags.userThemes
	s.HideSeconds = flags.hideSeconds
	return s
}

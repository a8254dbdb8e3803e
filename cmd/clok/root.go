package main

import (
	"github.com/spf13/cobra"

	"github.com/waozixyz/clok/internal/app"
	"github.com/waozixyz/clok/internal/config"
	"github.com/waozixyz/clok/internal/logger"
	"github.com/waozixyz/clok/render"
)

// hostFactory builds the window backend once the logger exists.
type hostFactory func(log *logger.Logger) render.Host

type rootFlags struct {
	width       int
	height      int
	theme       string
	hz          int
	userThemes  bool
	hideSeconds bool
	verbose     bool
	configDir   string
}

func newRootCmd(newHost hostFactory) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "An analog desktop clock drawn from SVG theme layers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := prepare(cmd, flags)
			if err != nil {
				return err
			}
			return app.Run(app.Options{
				Settings: env.settings,
				Store:    env.store,
				Host:     newHost(env.log),
				Log:      env.log,
			})
		},
	}

	pf := cmd.PersistentFlags()
	// -h is taken by --height, so help only has the long form.
	pf.Bool("help", false, "help for "+config.AppName)
	pf.IntVarP(&flags.width, "width", "w", config.DefaultWidth, "Window width in pixels")
	pf.IntVarP(&flags.height, "height", "h", config.DefaultHeight, "Window height in pixels")
	pf.StringVarP(&flags.theme, "theme", "t", config.DefaultTheme, "Theme name")
	pf.IntVarP(&flags.hz, "hz", "z", config.DefaultHz, "Redraw frequency")
	pf.BoolVarP(&flags.userThemes, "userthemes", "u", false, "Load themes from the user config directory")
	pf.BoolVarP(&flags.hideSeconds, "noseconds", "n", false, "Hide the second hand")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.configDir, "config-dir", "", "Override the configuration directory")
	_ = pf.MarkHidden("config-dir")

	cmd.AddCommand(newSnapshotCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

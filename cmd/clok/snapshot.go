package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/waozixyz/clok/internal/app"
)

type snapshotOptions struct {
	out string
	at  string
}

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame of the clock to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseClockTime(opts.at, time.Now())
			if err != nil {
				return err
			}

			env, err := prepare(cmd, flags)
			if err != nil {
				return err
			}

			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("create snapshot: %w", err)
			}
			root := env.settings.ThemeRoot(env.store.Dir())
			if err := app.Snapshot(env.settings, root, at, f, env.log); err != nil {
				f.Close()
				os.Remove(opts.out)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", opts.out, at.Format(time.TimeOnly))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "PNG file to write")
	cmd.Flags().StringVar(&opts.at, "at", "", "Time to show as HH:MM:SS (default now)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// parseClockTime places an HH:MM:SS wall time on the day of ref. An empty
// value means ref itself.
func parseClockTime(value string, ref time.Time) (time.Time, error) {
	if value == "" {
		return ref, nil
	}
	t, err := time.Parse(time.TimeOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: want HH:MM:SS", value)
	}
	y, m, d := ref.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, ref.Location()), nil
}

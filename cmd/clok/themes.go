package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/waozixyz/clok/theme"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List installed themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := prepare(cmd, flags)
			if err != nil {
				return err
			}

			root := env.settings.ThemeRoot(env.store.Dir())
			names, err := theme.List(root)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No themes found in %s\n", theme.Dir(root, ""))
				return nil
			}
			for _, name := range names {
				marker := " "
				if name == env.settings.Theme {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

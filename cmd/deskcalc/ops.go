package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc/internal/buildinfo"
	"github.com/zephyrtronium/deskcalc/internal/tui"
)

func (a *app) opsCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			md := tui.OpsMarkdown()
			if !raw {
				if render := a.renderer(); render != nil {
					s, err := render(md)
					if err != nil {
						return err
					}
					md = s
				}
			}
			_, err := fmt.Fprint(a.out, md)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(a.out, buildinfo.String())
			return err
		},
	}
}

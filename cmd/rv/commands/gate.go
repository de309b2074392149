package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

func gateCmd() *cobra.Command {
	var bounds responsive.Bounds

	cmd := &cobra.Command{
		Use:   "gate BREAKPOINT",
		Short: "Report whether a gate with the given bounds renders at BREAKPOINT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			current, ok := cfg.Breakpoints.Find(args[0])
			if !ok {
				// Evaluate a gate bounded by the name so the error carries a suggestion.
				_, err := responsive.Gate{
					Config: cfg.Responsive(),
					Bounds: responsive.Bounds{MinSize: args[0]},
				}.Included()
				return err
			}

			g := responsive.WrapGate(cfg.Responsive())(responsive.Gate{
				Current: &current,
				Bounds:  bounds,
			})
			included, err := g.Included()
			if err != nil {
				return err
			}
			if included {
				fmt.Fprintln(cmd.OutOrStdout(), "shown")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "hidden")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bounds.MinSize, "min", "", "lowest breakpoint the gate renders at")
	cmd.Flags().StringVar(&bounds.MaxSize, "max", "", "highest breakpoint the gate renders at")
	cmd.Flags().StringVar(&bounds.ShowAtOrAbove, "show-at-or-above", "", "legacy alias of --min")
	cmd.Flags().StringVar(&bounds.ShowAtOrBelow, "show-at-or-below", "", "legacy alias of --max")
	return cmd
}

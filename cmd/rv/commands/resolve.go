package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/config"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/viewport"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [WIDTH...]",
		Short: "Print the breakpoint active at each width, or at the terminal's width",
		Long: "Widths are device units: pixels in a browser, columns in a terminal. " +
			"With no widths the current terminal is measured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return resolveTerminal(cmd, cfg)
			}

			for _, arg := range args {
				width, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid width %q: %w", arg, err)
				}
				bp, err := resolveWidth(cfg, width)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", model.FormatWidth(width), bp.Name)
			}
			return nil
		},
	}
}

// resolveWidth runs a tracker against a fixed-width observer, the same path
// the demo takes on every resize.
func resolveWidth(cfg config.File, width float64) (model.Breakpoint, error) {
	obs := viewport.New(width, viewport.WithFontSize(responsive.DefaultBaseFontSize))
	return track(cfg, obs)
}

func resolveTerminal(cmd *cobra.Command, cfg config.File) error {
	obs := viewport.ForTerminal(os.Stdout)
	bp, err := track(cfg, obs)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", model.FormatWidth(obs.Width()), bp.Name)
	return nil
}

func track(cfg config.File, obs responsive.ViewportObserver) (model.Breakpoint, error) {
	var got *model.Breakpoint
	tracker := responsive.NewTracker(cfg.Responsive(), obs, func(bp model.Breakpoint) { got = &bp })
	if err := tracker.Activate(); err != nil {
		return model.Breakpoint{}, err
	}
	defer tracker.Deactivate()

	if tracker.Degraded() || got == nil {
		return model.Breakpoint{}, fmt.Errorf("cannot measure the viewport: %w", viewport.ErrNotTerminal)
	}
	return *got, nil
}

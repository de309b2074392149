package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/updater"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/version"
)

func versionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rv version %s\n", version.Version)
			if !check {
				return nil
			}
			tag, url, err := updater.CheckForUpdates(cmd.Context())
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}
			if tag == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "You are on the latest release.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Update available: %s (%s)\n", tag, url)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	return cmd
}

package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/export"
)

func previewCmd() *cobra.Command {
	var (
		port int
		open bool
	)

	cmd := &cobra.Command{
		Use:   "preview [DIR]",
		Short: "Serve an exported bundle, exporting it first if needed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			dir := ""
			if len(args) == 1 {
				dir = args[0]
			} else {
				dir, err = os.MkdirTemp("", "rv-preview-")
				if err != nil {
					return fmt.Errorf("create preview directory: %w", err)
				}
				defer os.RemoveAll(dir)
			}
			if _, err := os.Stat(filepath.Join(dir, export.BundleIndex)); err != nil {
				if err := export.WriteBundle(dir, cfg.Responsive(), cfg.Name); err != nil {
					return err
				}
			}

			if port == 0 {
				port, err = export.FindAvailablePort(export.PreviewPortRangeStart, export.PreviewPortRangeEnd)
				if err != nil {
					return err
				}
			}
			server := export.NewPreviewServer(dir, port, cfg.Breakpoints)

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s (Ctrl+C to stop)\n", dir, server.URL())
			if open {
				if err := export.OpenInBrowser(server.URL()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Could not open browser: %v\n", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Serve(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, fmt.Sprintf("port to listen on (default: first free in %d-%d)", export.PreviewPortRangeStart, export.PreviewPortRangeEnd))
	cmd.Flags().BoolVar(&open, "open", false, "open the preview in a browser")
	return cmd
}

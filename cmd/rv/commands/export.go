package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		cssOnly bool
		mapPath string
		prefix  string
		title   string
	)

	cmd := &cobra.Command{
		Use:   "export [DIR]",
		Short: "Export a stylesheet, breakpoint maps and a preview page",
		Long: "With DIR, writes index.html, responsive.css, breakpoints.svg and breakpoints.png. " +
			"--css prints only the stylesheet; --map writes a single SVG or PNG map.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if title == "" {
				title = cfg.Name
			}
			queries, err := compileFile(cfg)
			if err != nil {
				return err
			}

			if cssOnly {
				fmt.Fprint(cmd.OutOrStdout(), export.Stylesheet(queries, prefix))
				return nil
			}
			if mapPath != "" {
				if err := export.SaveBreakpointMap(export.MapOptions{Path: mapPath, Title: title, Queries: queries}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", mapPath)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("export needs a directory, --css or --map")
			}
			dir := args[0]
			if err := export.WriteBundle(dir, cfg.Responsive(), title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote bundle to %s\n", dir)
			fmt.Fprintf(cmd.OutOrStdout(), "Preview with: rv preview %s\n", filepath.Clean(dir))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cssOnly, "css", false, "print the stylesheet to stdout")
	cmd.Flags().StringVar(&mapPath, "map", "", "write a breakpoint map (.svg or .png)")
	cmd.Flags().StringVar(&prefix, "prefix", export.DefaultClassPrefix, "class name prefix")
	cmd.Flags().StringVar(&title, "title", "", "map title (default: config name)")
	return cmd
}

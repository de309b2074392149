// Package commands implements the rv command line.
package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/config"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

var (
	configPath string
	presetName string
	fontSize   float64
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rv",
		Short:        "Responsive breakpoint viewer",
		Long:         "rv compiles named width breakpoints into media queries, tracks the active breakpoint of the terminal, and exports the result for the browser.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "breakpoint config file (default ~/.config/rv/breakpoints.yaml)")
	root.PersistentFlags().StringVar(&presetName, "preset", "", "built-in breakpoint set ("+presetList()+")")
	root.PersistentFlags().Float64Var(&fontSize, "font-size", 0, "base font size for em/rem units (overrides the config)")

	root.AddCommand(
		runCmd(),
		compileCmd(),
		resolveCmd(),
		gateCmd(),
		exportCmd(),
		previewCmd(),
		initCmd(),
		historyCmd(),
		versionCmd(),
	)
	return root
}

func presetList() string {
	return strings.Join(config.PresetNames(), ", ")
}

// loadConfig resolves --config and --preset and applies --font-size.
func loadConfig() (config.File, string, error) {
	f, path, err := config.Resolve(configPath, presetName)
	if err != nil {
		return config.File{}, "", err
	}
	if fontSize > 0 {
		f.BaseFontSize = fontSize
	}
	return f, path, nil
}

func compileFile(f config.File) ([]responsive.Query, error) {
	rc := f.Responsive()
	return responsive.Compile(rc.Breakpoints, rc.WidthUnits, rc.BaseFontSize)
}

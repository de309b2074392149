package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/config"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

func initCmd() *cobra.Command {
	var (
		force   bool
		noInput bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a breakpoint config file from a preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if path == "" {
				return fmt.Errorf("cannot determine home directory; pass --config")
			}

			preset := presetName
			if preset == "" {
				preset = config.DefaultPreset
			}
			name := ""
			units := ""
			overwrite := force

			_, statErr := os.Stat(path)
			exists := statErr == nil

			if !noInput {
				unitOptions := []string{string(model.UnitPx), string(model.UnitEm), string(model.UnitRem), string(model.UnitCols)}
				fields := []huh.Field{
					huh.NewSelect[string]().
						Title("Start from preset").
						Options(huh.NewOptions(config.PresetNames()...)...).
						Value(&preset),
					huh.NewInput().
						Title("Config name").
						Placeholder("defaults to the preset name").
						Value(&name),
					huh.NewSelect[string]().
						Title("Width units").
						Description("Leave as the preset's unit unless your widths are in another unit").
						Options(append([]huh.Option[string]{huh.NewOption("preset default", "")}, huh.NewOptions(unitOptions...)...)...).
						Value(&units),
				}
				if exists && !force {
					fields = append(fields, huh.NewConfirm().
						Title(fmt.Sprintf("%s exists. Overwrite?", path)).
						Value(&overwrite))
				}
				if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			if exists && !overwrite {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			f, ok := config.Preset(preset)
			if !ok {
				return fmt.Errorf("unknown preset %q", preset)
			}
			if name != "" {
				f.Name = name
			}
			if units != "" {
				f.Units = model.Unit(units)
			}
			if err := config.Save(path, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d breakpoints, %s)\n", path, len(f.Breakpoints), f.Units)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "skip the interactive form and use --preset")
	return cmd
}

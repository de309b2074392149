// Package config loads and saves breakpoint sets from YAML.
//
// A file looks like:
//
//	name: web
//	units: px
//	breakpoints:
//	  - name: small
//	    width: 480
//	  - name: medium
//	    width: 768
//	  - name: large        # no width: unbounded
//
// The last breakpoint may omit its width (or use .inf) to mean "no upper bound".
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// File is the on-disk breakpoint configuration.
type File struct {
	Name         string            `yaml:"name,omitempty"`
	Units        model.Unit        `yaml:"units,omitempty"`
	BaseFontSize float64           `yaml:"base_font_size,omitempty"`
	Breakpoints  model.Breakpoints `yaml:"breakpoints"`
}

var presets = map[string]File{
	// Common web widths.
	"web": {
		Name:  "web",
		Units: model.UnitPx,
		Breakpoints: model.Breakpoints{
			{Name: "small", Width: 480},
			{Name: "medium", Width: 768},
			{Name: "large", Width: math.Inf(1)},
		},
	},
	// Terminal column tiers.
	"terminal": {
		Name:  "terminal",
		Units: model.UnitCols,
		Breakpoints: model.Breakpoints{
			{Name: "narrow", Width: 80},
			{Name: "medium", Width: 100},
			{Name: "wide", Width: 140},
			{Name: "ultra", Width: math.Inf(1)},
		},
	},
}

// DefaultPreset is used when no configuration file exists.
const DefaultPreset = "terminal"

// Preset returns a copy of a built-in configuration.
func Preset(name string) (File, bool) {
	f, ok := presets[name]
	if !ok {
		return File{}, false
	}
	f.Breakpoints = f.Breakpoints.Clone()
	return f, true
}

// PresetNames returns the built-in configuration names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPath returns ~/.config/rv/breakpoints.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rv", "breakpoints.yaml")
}

// Load reads and validates a configuration file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	f.normalize()
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Resolve loads path when set, otherwise the default path when it exists,
// otherwise the named preset (DefaultPreset when empty).
func Resolve(path, preset string) (File, string, error) {
	if path != "" {
		f, err := Load(path)
		return f, path, err
	}
	if preset != "" {
		f, ok := Preset(preset)
		if !ok {
			return File{}, "", fmt.Errorf("unknown preset %q (have %v)", preset, PresetNames())
		}
		return f, "", nil
	}
	if def := DefaultPath(); def != "" {
		if _, err := os.Stat(def); err == nil {
			f, err := Load(def)
			return f, def, err
		}
	}
	f, _ := Preset(DefaultPreset)
	return f, "", nil
}

// Save writes f as YAML, creating parent directories.
func Save(path string, f File) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (f *File) normalize() {
	if f.Units == "" {
		f.Units = model.UnitPx
	}
	if n := len(f.Breakpoints); n > 0 && f.Breakpoints[n-1].Width == 0 {
		f.Breakpoints[n-1].Width = math.Inf(1)
	}
}

// Validate checks the unit and the breakpoint list.
func (f File) Validate() error {
	if f.Units != "" && !f.Units.IsValid() {
		return fmt.Errorf("invalid units %q", f.Units)
	}
	if f.BaseFontSize < 0 {
		return fmt.Errorf("base_font_size must not be negative")
	}
	return f.Breakpoints.Validate()
}

// Responsive converts the file into library configuration.
func (f File) Responsive() responsive.Config {
	return responsive.Config{
		Breakpoints:  f.Breakpoints.Clone(),
		WidthUnits:   f.Units,
		BaseFontSize: f.BaseFontSize,
	}
}

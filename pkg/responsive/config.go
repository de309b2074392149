package responsive

import "github.com/Dicklesworthstone/responsive_viewer/pkg/model"

// Config is the configuration shared by trackers and gates.
type Config struct {
	Breakpoints  model.Breakpoints
	WidthUnits   model.Unit // defaults to px
	BaseFontSize float64    // overrides the observer's font size when > 0
}

// Merge returns c with every non-zero field of override applied on top.
func (c Config) Merge(override Config) Config {
	merged := c
	if len(override.Breakpoints) > 0 {
		merged.Breakpoints = override.Breakpoints
	}
	if override.WidthUnits != "" {
		merged.WidthUnits = override.WidthUnits
	}
	if override.BaseFontSize > 0 {
		merged.BaseFontSize = override.BaseFontSize
	}
	return merged
}

func (c Config) withDefaults() Config {
	if c.WidthUnits == "" {
		c.WidthUnits = model.UnitPx
	}
	return c
}

// WrapGate returns a constructor that fills each gate's Config from base,
// keeping whatever the gate sets itself.
//
//	gate := responsive.WrapGate(cfg)
//	nav := gate(responsive.Gate{Bounds: responsive.Bounds{MinSize: "medium"}, ...})
func WrapGate(base Config) func(Gate) Gate {
	return func(g Gate) Gate {
		g.Config = base.Merge(g.Config)
		return g
	}
}

// WrapTracker returns a NewTracker variant with base configuration applied.
func WrapTracker(base Config) func(override Config, observer ViewportObserver, onChange func(model.Breakpoint)) *Tracker {
	return func(override Config, observer ViewportObserver, onChange func(model.Breakpoint)) *Tracker {
		return NewTracker(base.Merge(override), observer, onChange)
	}
}

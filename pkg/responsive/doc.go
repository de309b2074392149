// Package responsive resolves the active breakpoint for a viewport and decides
// which parts of a UI tree render at that breakpoint.
//
// A Tracker compiles an ordered model.Breakpoints list into one width-range
// Query per breakpoint, registers a listener for each with a ViewportObserver
// and publishes the active breakpoint through a callback. Gates receive that
// breakpoint and decide, from optional MinSize/MaxSize bounds, whether their
// content is present and which responsive key it carries.
//
// Everything runs on the caller's goroutine. Observers dispatch listeners from
// the host's event loop (for Bubble Tea that is Update), so nothing here locks.
//
// Typical wiring with one root tracker:
//
//	cfg := responsive.Config{Breakpoints: bps}
//	var current *model.Breakpoint
//	tracker := responsive.NewTracker(cfg, observer, func(bp model.Breakpoint) {
//	    current = &bp
//	})
//	if err := tracker.Activate(); err != nil {
//	    return err
//	}
//	defer tracker.Deactivate()
//
//	gate := responsive.Gate{
//	    Config:  cfg,
//	    Current: current,
//	    Bounds:  responsive.Bounds{MinSize: "medium"},
//	    Content: responsive.Elements{nav},
//	}
//	nodes, err := gate.Render()
package responsive

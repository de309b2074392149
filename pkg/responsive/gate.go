package responsive

import (
	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// Bounds restricts the breakpoints at which a gate's content is present. Both
// ends are inclusive and empty names mean "no bound". ShowAtOrAbove and
// ShowAtOrBelow are older names for MinSize and MaxSize.
type Bounds struct {
	MinSize string
	MaxSize string

	ShowAtOrAbove string
	ShowAtOrBelow string
}

// Normalize folds the legacy names into MinSize/MaxSize.
func (b Bounds) Normalize() (Bounds, error) {
	minSize, err := pickAlias(b.MinSize, b.ShowAtOrAbove)
	if err != nil {
		return Bounds{}, err
	}
	maxSize, err := pickAlias(b.MaxSize, b.ShowAtOrBelow)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{MinSize: minSize, MaxSize: maxSize}, nil
}

func pickAlias(name, alias string) (string, error) {
	switch {
	case alias == "":
		return name, nil
	case name == "" || name == alias:
		return alias, nil
	}
	return "", model.ErrConflictingBounds
}

// Content is what a gate renders: Elements or a KeyedBuilder.
type Content interface {
	isContent()
}

// Elements are rendered as-is, with each *Element tagged with the responsive key.
type Elements []Node

// KeyedBuilder receives the responsive key and builds the content itself.
type KeyedBuilder func(key string) Node

func (Elements) isContent()     {}
func (KeyedBuilder) isContent() {}

// Gate decides whether its content renders at the current breakpoint.
// A Gate holds no state beyond its fields.
type Gate struct {
	Config  Config
	Current *model.Breakpoint
	Bounds  Bounds
	Content Content
}

// Included reports whether Current lies within the bounds. Bound names are
// resolved against Config.Breakpoints even when Current is unset, so a
// misspelled name is reported as soon as the gate is evaluated.
func (g Gate) Included() (bool, error) {
	bounds, err := g.Bounds.Normalize()
	if err != nil {
		return false, err
	}

	var minBP, maxBP *model.Breakpoint
	if bounds.MinSize != "" {
		bp, err := lookup(g.Config.Breakpoints, bounds.MinSize)
		if err != nil {
			return false, err
		}
		minBP = &bp
	}
	if bounds.MaxSize != "" {
		bp, err := lookup(g.Config.Breakpoints, bounds.MaxSize)
		if err != nil {
			return false, err
		}
		maxBP = &bp
	}

	if g.Current == nil {
		return false, nil
	}
	atOrAboveMin := minBP == nil || g.Current.Width >= minBP.Width
	atOrBelowMax := maxBP == nil || g.Current.Width <= maxBP.Width
	return atOrAboveMin && atOrBelowMax, nil
}

// Render returns the gate's content for the current breakpoint, or nil when
// the gate is closed or no breakpoint has been measured yet.
func (g Gate) Render() ([]Node, error) {
	included, err := g.Included()
	if err != nil || !included {
		return nil, err
	}

	key := g.Current.Name
	switch c := g.Content.(type) {
	case KeyedBuilder:
		if c == nil {
			return nil, nil
		}
		n := c(key)
		if n == nil {
			return nil, nil
		}
		return []Node{n}, nil
	case Elements:
		out := make([]Node, len(c))
		for i, n := range c {
			out[i] = tag(n, key)
		}
		return out, nil
	}
	return nil, nil
}

// View renders the gate's content to a string. A closed gate renders "".
func (g Gate) View() (string, error) {
	nodes, err := g.Render()
	if err != nil {
		return "", err
	}
	return Render(nodes...), nil
}

func lookup(bps model.Breakpoints, name string) (model.Breakpoint, error) {
	if bp, ok := bps.Find(name); ok {
		return bp, nil
	}
	err := &model.UnknownBreakpointError{Name: name}
	if matches := fuzzy.Find(name, bps.Names()); len(matches) > 0 {
		err.Suggestion = matches[0].Str
	}
	return model.Breakpoint{}, err
}

// SelfTrackingGate is a gate that subscribes to the viewport itself instead of
// being fed by a shared Tracker. It suits isolated widgets; a tree with many
// gates should share one Tracker.
type SelfTrackingGate struct {
	gate    Gate
	tracker *Tracker
}

// NewSelfTrackingGate creates a gate with a private tracker. onChange, when
// set, runs after the gate's breakpoint changes so the host can re-render.
func NewSelfTrackingGate(cfg Config, observer ViewportObserver, bounds Bounds, content Content, onChange func()) *SelfTrackingGate {
	s := &SelfTrackingGate{
		gate: Gate{Config: cfg, Bounds: bounds, Content: content},
	}
	s.tracker = NewTracker(cfg, observer, func(bp model.Breakpoint) {
		s.gate.Current = &bp
		if onChange != nil {
			onChange()
		}
	})
	return s
}

// Activate starts the private tracker.
func (s *SelfTrackingGate) Activate() error {
	return s.tracker.Activate()
}

// Deactivate stops the private tracker and forgets the breakpoint.
func (s *SelfTrackingGate) Deactivate() {
	s.tracker.Deactivate()
	s.gate.Current = nil
}

// Render renders the gate at its own breakpoint.
func (s *SelfTrackingGate) Render() ([]Node, error) {
	return s.gate.Render()
}

// Current returns the breakpoint last seen by the gate.
func (s *SelfTrackingGate) Current() (model.Breakpoint, bool) {
	return s.tracker.Current()
}

package responsive

import (
	"errors"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// ErrAlreadyActive is returned by Activate on a tracker that is already active.
var ErrAlreadyActive = errors.New("responsive: tracker already active")

// Tracker owns the viewport subscriptions for one breakpoint list and
// publishes the active breakpoint.
type Tracker struct {
	cfg      Config
	observer ViewportObserver
	onChange func(model.Breakpoint)

	queries  []Query
	bindings []*binding
	current  *model.Breakpoint
	active   bool
	degraded bool
}

// binding ties one compiled query to its live list and listener handle.
type binding struct {
	query    Query
	list     MediaQueryList
	id       ListenerID
	released bool
}

// NewTracker creates an inactive tracker. onChange may be nil; the active
// breakpoint is then only available through Current.
func NewTracker(cfg Config, observer ViewportObserver, onChange func(model.Breakpoint)) *Tracker {
	return &Tracker{
		cfg:      cfg.withDefaults(),
		observer: observer,
		onChange: onChange,
	}
}

// Activate compiles the breakpoint list, registers one listener per query and
// runs each listener once, so the initial breakpoint is published before this
// returns.
//
// An invalid breakpoint list fails here. When the observer is nil or
// unsupported the tracker activates in degraded mode: it subscribes to
// nothing and never reports a breakpoint.
func (t *Tracker) Activate() error {
	if t.active {
		return ErrAlreadyActive
	}
	if err := t.cfg.Breakpoints.Validate(); err != nil {
		return err
	}

	if t.observer == nil || !t.observer.Supported() {
		t.active = true
		t.degraded = true
		return nil
	}

	fontSize := t.cfg.BaseFontSize
	if fontSize <= 0 {
		fontSize = t.observer.BaseFontSize()
	}
	queries, err := Compile(t.cfg.Breakpoints, t.cfg.WidthUnits, fontSize)
	if err != nil {
		return err
	}

	t.queries = queries
	t.active = true
	t.degraded = false
	bindings := make([]*binding, 0, len(queries))
	for _, q := range queries {
		b := &binding{query: q, list: t.observer.MatchMedia(q)}
		b.id = b.list.AddListener(func() { t.handle(b) })
		bindings = append(bindings, b)
	}
	t.bindings = bindings

	// onChange may deactivate the tracker during the initial publish.
	for _, b := range bindings {
		if !t.active {
			break
		}
		t.handle(b)
	}
	return nil
}

// Deactivate removes every listener registered by Activate. It is safe to
// call more than once and on a tracker that was never activated.
func (t *Tracker) Deactivate() {
	for _, b := range t.bindings {
		b.list.RemoveListener(b.id)
		b.released = true
		b.list = nil
	}
	t.bindings = nil
	t.queries = nil
	t.current = nil
	t.active = false
	t.degraded = false
}

func (t *Tracker) handle(b *binding) {
	// A host may still hold a reference to a removed listener.
	if !t.active || b.released {
		return
	}
	if !b.list.Matches() {
		return
	}
	bp := b.query.Breakpoint
	if t.current != nil && *t.current == bp {
		return
	}
	t.current = &bp
	if t.onChange != nil {
		t.onChange(bp)
	}
}

// Current returns the active breakpoint, if one has been measured.
func (t *Tracker) Current() (model.Breakpoint, bool) {
	if t.current == nil {
		return model.Breakpoint{}, false
	}
	return *t.current, true
}

// Active reports whether the tracker is between Activate and Deactivate.
func (t *Tracker) Active() bool { return t.active }

// Degraded reports whether the tracker activated without viewport support.
func (t *Tracker) Degraded() bool { return t.degraded }

// Queries returns the compiled queries of the current activation.
func (t *Tracker) Queries() []Query {
	out := make([]Query, len(t.queries))
	copy(out, t.queries)
	return out
}

// Config returns the tracker's configuration.
func (t *Tracker) Config() Config { return t.cfg }

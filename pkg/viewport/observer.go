// Package viewport provides ViewportObserver implementations for terminals
// and tests.
//
// Observer keeps the last known width and evaluates compiled queries against
// it. The host feeds widths with Resize (or Update for Bubble Tea messages);
// listeners run synchronously inside that call.
package viewport

import (
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// DefaultCellFontSize treats one terminal cell as one em when em/rem units are
// used with a terminal observer.
const DefaultCellFontSize = 1

// Observer is an in-memory media-query facility driven by explicit widths.
type Observer struct {
	width     float64
	fontSize  float64
	supported bool
	nextID    responsive.ListenerID
	lists     []*mediaQueryList
}

// Option configures an Observer.
type Option func(*Observer)

// WithFontSize sets the base font size reported to trackers.
func WithFontSize(size float64) Option {
	return func(o *Observer) {
		o.fontSize = size
	}
}

// WithoutSupport makes the observer report no viewport support, which puts
// trackers in degraded mode.
func WithoutSupport() Option {
	return func(o *Observer) {
		o.supported = false
	}
}

// New creates an observer with the given initial width.
func New(width float64, opts ...Option) *Observer {
	o := &Observer{
		width:     width,
		fontSize:  responsive.DefaultBaseFontSize,
		supported: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Supported implements responsive.ViewportObserver.
func (o *Observer) Supported() bool { return o.supported }

// BaseFontSize implements responsive.ViewportObserver.
func (o *Observer) BaseFontSize() float64 { return o.fontSize }

// MatchMedia implements responsive.ViewportObserver.
func (o *Observer) MatchMedia(q responsive.Query) responsive.MediaQueryList {
	l := &mediaQueryList{owner: o, query: q}
	o.attach(l)
	return l
}

// Width returns the last width passed to Resize.
func (o *Observer) Width() float64 { return o.width }

// Resize records a new width and notifies listeners of every list whose match
// state flipped.
func (o *Observer) Resize(width float64) {
	o.width = width
	// Snapshot: listeners may call MatchMedia or RemoveListener.
	lists := append([]*mediaQueryList(nil), o.lists...)
	for _, l := range lists {
		matches := l.query.Matches(width)
		if matches == l.matches {
			continue
		}
		l.matches = matches
		l.dispatch()
	}
}

// ListenerCount returns the number of registered listeners across all lists.
func (o *Observer) ListenerCount() int {
	n := 0
	for _, l := range o.lists {
		n += len(l.listeners)
	}
	return n
}

func (o *Observer) id() responsive.ListenerID {
	o.nextID++
	return o.nextID
}

func (o *Observer) attach(l *mediaQueryList) {
	l.matches = l.query.Matches(o.width)
	l.attached = true
	o.lists = append(o.lists, l)
}

// prune drops lists that no longer have listeners.
func (o *Observer) prune() {
	kept := o.lists[:0]
	for _, l := range o.lists {
		if len(l.listeners) > 0 {
			kept = append(kept, l)
			continue
		}
		l.attached = false
	}
	for i := len(kept); i < len(o.lists); i++ {
		o.lists[i] = nil
	}
	o.lists = kept
}

type listener struct {
	id responsive.ListenerID
	fn func()
}

type mediaQueryList struct {
	owner     *Observer
	query     responsive.Query
	matches   bool
	attached  bool
	listeners []listener
}

func (l *mediaQueryList) Media() string { return l.query.Media }

func (l *mediaQueryList) Matches() bool { return l.matches }

func (l *mediaQueryList) AddListener(fn func()) responsive.ListenerID {
	if !l.attached {
		l.owner.attach(l)
	}
	id := l.owner.id()
	l.listeners = append(l.listeners, listener{id: id, fn: fn})
	return id
}

func (l *mediaQueryList) RemoveListener(id responsive.ListenerID) {
	for i, ls := range l.listeners {
		if ls.id == id {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			break
		}
	}
	if len(l.listeners) == 0 {
		l.owner.prune()
	}
}

func (l *mediaQueryList) dispatch() {
	pending := append([]listener(nil), l.listeners...)
	for _, ls := range pending {
		if !l.registered(ls.id) {
			continue
		}
		ls.fn()
	}
}

func (l *mediaQueryList) registered(id responsive.ListenerID) bool {
	for _, ls := range l.listeners {
		if ls.id == id {
			return true
		}
	}
	return false
}

package responsive

// ListenerID identifies a listener registered on a MediaQueryList.
type ListenerID uint64

// MediaQueryList is a live view of one compiled query.
type MediaQueryList interface {
	// Media returns the query text the list was created from.
	Media() string
	// Matches reports whether the query matches the current width.
	Matches() bool
	// AddListener registers fn to run whenever Matches flips.
	AddListener(fn func()) ListenerID
	// RemoveListener unregisters a listener. Unknown IDs are ignored.
	RemoveListener(id ListenerID)
}

// ViewportObserver is the host's viewport-change facility.
type ViewportObserver interface {
	// Supported reports whether the host can deliver width changes at all.
	Supported() bool
	// MatchMedia returns a live list for q.
	MatchMedia(q Query) MediaQueryList
	// BaseFontSize returns the size of one em in device units.
	BaseFontSize() float64
}

package model

import (
	"fmt"
	"math"
	"strconv"
)

// Breakpoint is a named width threshold. Width is the inclusive upper bound of
// the breakpoint's interval; math.Inf(1) means the interval has no upper bound.
type Breakpoint struct {
	Name  string  `json:"name" yaml:"name"`
	Width float64 `json:"width" yaml:"width"`
}

// Unbounded reports whether the breakpoint has no upper width limit.
func (b Breakpoint) Unbounded() bool {
	return math.IsInf(b.Width, 1)
}

// String formats the breakpoint as name(width).
func (b Breakpoint) String() string {
	return b.Name + "(" + FormatWidth(b.Width) + ")"
}

// Breakpoints is an ordered list of breakpoints, ascending by width.
type Breakpoints []Breakpoint

// Clone creates a copy of the list
func (bs Breakpoints) Clone() Breakpoints {
	if bs == nil {
		return nil
	}
	clone := make(Breakpoints, len(bs))
	copy(clone, bs)
	return clone
}

// Validate checks that the list is non-empty, names are unique and non-empty,
// widths are strictly increasing, and only the last entry is unbounded.
func (bs Breakpoints) Validate() error {
	if len(bs) == 0 {
		return &InvalidBreakpointListError{Index: -1, Reason: "breakpoint list is empty"}
	}

	seen := make(map[string]int, len(bs))
	for i, b := range bs {
		if b.Name == "" {
			return &InvalidBreakpointListError{Index: i, Reason: "breakpoint name cannot be empty"}
		}
		if prev, ok := seen[b.Name]; ok {
			return &InvalidBreakpointListError{
				Index:  i,
				Reason: fmt.Sprintf("duplicate name %q (first at index %d)", b.Name, prev),
			}
		}
		seen[b.Name] = i

		if math.IsNaN(b.Width) || b.Width <= 0 {
			return &InvalidBreakpointListError{
				Index:  i,
				Reason: fmt.Sprintf("width of %q must be positive, got %s", b.Name, FormatWidth(b.Width)),
			}
		}
		if b.Unbounded() && i != len(bs)-1 {
			return &InvalidBreakpointListError{
				Index:  i,
				Reason: fmt.Sprintf("only the last breakpoint may be unbounded, %q is not last", b.Name),
			}
		}
		if i > 0 && b.Width <= bs[i-1].Width {
			return &InvalidBreakpointListError{
				Index: i,
				Reason: fmt.Sprintf("widths must be strictly increasing: %s follows %s",
					b, bs[i-1]),
			}
		}
	}
	return nil
}

// Find returns the breakpoint with the given name.
func (bs Breakpoints) Find(name string) (Breakpoint, bool) {
	for _, b := range bs {
		if b.Name == name {
			return b, true
		}
	}
	return Breakpoint{}, false
}

// Names returns the breakpoint names in order.
func (bs Breakpoints) Names() []string {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name
	}
	return names
}

// Resolve returns the breakpoint whose interval contains width. Widths at or
// below zero resolve to the first breakpoint; widths past a bounded last
// breakpoint resolve to the last one.
func (bs Breakpoints) Resolve(width float64) (Breakpoint, bool) {
	if len(bs) == 0 {
		return Breakpoint{}, false
	}
	for _, b := range bs {
		if width <= b.Width {
			return b, true
		}
	}
	return bs[len(bs)-1], true
}

// Unit is the CSS length unit used when compiling media queries.
type Unit string

const (
	UnitPx   Unit = "px"
	UnitEm   Unit = "em"
	UnitRem  Unit = "rem"
	UnitCols Unit = "cols" // terminal columns; compiles like px
)

// IsValid returns true if the unit is a recognized value
func (u Unit) IsValid() bool {
	switch u {
	case UnitPx, UnitEm, UnitRem, UnitCols:
		return true
	}
	return false
}

// CSS returns the unit suffix used in media query text. Terminal columns are
// written as ch, the closest CSS unit to one character cell.
func (u Unit) CSS() string {
	if u == UnitCols {
		return "ch"
	}
	return string(u)
}

// Relative reports whether the unit scales with the base font size.
func (u Unit) Relative() bool {
	return u == UnitEm || u == UnitRem
}

// FormatWidth renders a width without trailing zeros; infinity renders as "inf".
func FormatWidth(w float64) string {
	if math.IsInf(w, 1) {
		return "inf"
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}

package responsive

import (
	"fmt"
	"math"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// DefaultBaseFontSize is used for em/rem conversion when the observer cannot
// report a usable font size.
const DefaultBaseFontSize = 16

// Query is the compiled width predicate for one breakpoint.
//
// Lower is exclusive and Upper inclusive, both expressed in Unit. The first
// query has Lower = -Inf and an unbounded breakpoint has Upper = +Inf, so the
// queries of one list cover the whole width axis without overlap.
type Query struct {
	Breakpoint model.Breakpoint
	Lower      float64
	Upper      float64
	Unit       model.Unit
	Media      string // CSS media query text, e.g. "(min-width: 481px) and (max-width: 768px)"

	scale float64 // device units per Unit
}

// Matches reports whether a width in device units (px or columns) falls in the
// query's interval.
func (q Query) Matches(width float64) bool {
	scale := q.scale
	if scale <= 0 {
		scale = 1
	}
	w := width / scale
	return w > q.Lower && w <= q.Upper
}

func (q Query) String() string {
	return q.Breakpoint.Name + ": " + q.Media
}

// Compile turns an ordered breakpoint list into one Query per breakpoint.
//
// Breakpoint i matches widths in (W[i-1], W[i]]. The compiled media text uses
// min-width W[i-1]+shift, where shift is one device pixel expressed in unit,
// so that a boundary width never satisfies two adjacent media queries.
func Compile(bps model.Breakpoints, unit model.Unit, baseFontSize float64) ([]Query, error) {
	if err := bps.Validate(); err != nil {
		return nil, err
	}
	if unit == "" {
		unit = model.UnitPx
	}
	if !unit.IsValid() {
		return nil, fmt.Errorf("unsupported width unit %q", unit)
	}
	if baseFontSize <= 0 || math.IsNaN(baseFontSize) || math.IsInf(baseFontSize, 0) {
		baseFontSize = DefaultBaseFontSize
	}

	scale := 1.0
	shift := 1.0
	if unit.Relative() {
		scale = baseFontSize
		shift = 1 / baseFontSize
	}

	queries := make([]Query, len(bps))
	for i, bp := range bps {
		q := Query{
			Breakpoint: bp,
			Lower:      math.Inf(-1),
			Upper:      bp.Width,
			Unit:       unit,
			scale:      scale,
		}

		if i == 0 {
			if bp.Unbounded() {
				q.Media = "all"
			} else {
				q.Media = fmt.Sprintf("(max-width: %s%s)", model.FormatWidth(bp.Width), unit.CSS())
			}
		} else {
			q.Lower = bps[i-1].Width
			minClause := fmt.Sprintf("(min-width: %s%s)", model.FormatWidth(bps[i-1].Width+shift), unit.CSS())
			if bp.Unbounded() {
				q.Media = minClause
			} else {
				q.Media = fmt.Sprintf("%s and (max-width: %s%s)", minClause, model.FormatWidth(bp.Width), unit.CSS())
			}
		}
		queries[i] = q
	}
	return queries, nil
}

// Active returns the breakpoint whose query matches width.
func Active(queries []Query, width float64) (model.Breakpoint, bool) {
	for _, q := range queries {
		if q.Matches(width) {
			return q.Breakpoint, true
		}
	}
	return model.Breakpoint{}, false
}

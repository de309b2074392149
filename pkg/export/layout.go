// Package export renders compiled breakpoints for use outside the terminal:
// a CSS stylesheet, SVG and PNG breakpoint maps, and a previewable HTML bundle.
package export

import (
	"image/color"
	"math"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// Map dimensions in pixels.
const (
	MapWidth     = 800
	MapHeight    = 160
	mapMargin    = 20
	mapBarTop    = 40
	mapBarHeight = 50
)

// Palette cycles through Dracula accents, matching the TUI theme.
var Palette = []color.RGBA{
	{0xBD, 0x93, 0xF9, 0xFF},
	{0x8B, 0xE9, 0xFD, 0xFF},
	{0x50, 0xFA, 0x7B, 0xFF},
	{0xFF, 0xB8, 0x6C, 0xFF},
	{0xFF, 0x79, 0xC6, 0xFF},
	{0xF1, 0xFA, 0x8C, 0xFF},
}

// segment is one breakpoint's span on the map, in pixels.
type segment struct {
	X0, X1 int
	Name   string
	Media  string
	Range  string
	Color  color.RGBA
}

// layoutSegments places the queries along a horizontal axis. The axis ends a
// quarter past the largest finite width, where an unbounded breakpoint stops.
func layoutSegments(queries []responsive.Query, width int) []segment {
	if len(queries) == 0 {
		return nil
	}
	maxFinite := 0.0
	for _, q := range queries {
		if !q.Breakpoint.Unbounded() && q.Breakpoint.Width > maxFinite {
			maxFinite = q.Breakpoint.Width
		}
	}
	if maxFinite == 0 {
		maxFinite = 1
	}
	axisEnd := maxFinite * 1.25
	span := float64(width - 2*mapMargin)
	toX := func(w float64) int {
		if math.IsInf(w, 1) || w > axisEnd {
			w = axisEnd
		}
		if math.IsInf(w, -1) || w < 0 {
			w = 0
		}
		return mapMargin + int(math.Round(w/axisEnd*span))
	}

	segs := make([]segment, len(queries))
	for i, q := range queries {
		lower := "0"
		if !math.IsInf(q.Lower, -1) {
			lower = model.FormatWidth(q.Lower)
		}
		segs[i] = segment{
			X0:    toX(q.Lower),
			X1:    toX(q.Upper),
			Name:  q.Breakpoint.Name,
			Media: q.Media,
			Range: "(" + lower + ", " + model.FormatWidth(q.Upper) + "]",
			Color: Palette[i%len(Palette)],
		}
	}
	return segs
}

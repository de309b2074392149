package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the renderer and the adaptive colors every view draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
}

// DefaultTheme returns the Dracula theme bound to a renderer for w.
func DefaultTheme(w io.Writer) Theme {
	return NewTheme(lipgloss.NewRenderer(w))
}

// NewTheme returns the Dracula theme bound to r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: string(ColorSecondary)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: string(ColorSubtext)},
		Border:    lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: string(ColorBgHighlight)},
		Highlight: lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: string(ColorBgSubtle)},

		Success: lipgloss.AdaptiveColor{Light: "#00A800", Dark: string(ColorSuccess)},
		Warning: lipgloss.AdaptiveColor{Light: "#B8860B", Dark: string(ColorWarning)},
		Danger:  lipgloss.AdaptiveColor{Light: "#CC0000", Dark: string(ColorDanger)},
	}
}

// BreakpointColor returns the accent for the i-th breakpoint. The order matches
// the exported breakpoint map.
func (t Theme) BreakpointColor(i int) lipgloss.AdaptiveColor {
	if i < 0 {
		i = 0
	}
	c := string(BreakpointPalette[i%len(BreakpointPalette)])
	return lipgloss.AdaptiveColor{Light: c, Dark: c}
}

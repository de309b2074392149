package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// articleRenderer renders the markdown body below the content grid, re-wrapping
// when the width changes.
type articleRenderer struct {
	style    string
	wrap     int
	renderer *glamour.TermRenderer
}

func newArticleRenderer(style string) *articleRenderer {
	if style == "" {
		style = "dark"
	}
	return &articleRenderer{style: style}
}

// Render returns md rendered for wrap columns.
func (a *articleRenderer) Render(md string, wrap int) (string, error) {
	if wrap < 20 {
		wrap = 20
	}
	if a.renderer == nil || a.wrap != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(a.style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		a.renderer, a.wrap = r, wrap
	}
	out, err := a.renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// articleMarkdown describes the active breakpoint and lists every compiled query.
func articleMarkdown(current *model.Breakpoint, width float64, unit model.Unit, queries []responsive.Query) string {
	var b strings.Builder
	if current == nil {
		b.WriteString("## No breakpoint measured yet\n\n")
	} else {
		fmt.Fprintf(&b, "## Breakpoint: %s\n\n", current.Name)
	}
	fmt.Fprintf(&b, "The viewport is **%s %s** wide. ", model.FormatWidth(width), unit)
	b.WriteString("Exactly one breakpoint matches any width: each covers the widths above the previous ")
	b.WriteString("breakpoint's limit up to and including its own. Resize the terminal to watch the header ")
	b.WriteString("collapse into a menu and the content grid change its column count.\n\n")

	b.WriteString("| Breakpoint | Range | Media query |\n|---|---|---|\n")
	for i, q := range queries {
		marker := ""
		if current != nil && q.Breakpoint.Name == current.Name {
			marker = " ◀"
		}
		lower := "0"
		if i > 0 {
			lower = model.FormatWidth(q.Lower)
		}
		fmt.Fprintf(&b, "| %s%s | (%s, %s] | `%s` |\n", q.Breakpoint.Name, marker, lower, model.FormatWidth(q.Upper), q.Media)
	}
	return b.String()
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// ContentItem is one card in the content grid.
type ContentItem struct {
	Title string
	Text  string
}

// DefaultContent is the demo's card list.
var DefaultContent = []ContentItem{
	{"Lorem ipsum", "Lorem ipsum dolor sit amet"},
	{"Sententiae", "Sententiae voluptatum per an"},
	{"No sea", "No sea percipit mnesarchum"},
	{"Ne vel", "Ne vel periculis explicari"},
	{"Assum mediocrem", "Assum mediocrem posidonium ea ius"},
}

// NavItems are the links shown from the second breakpoint up.
var NavItems = []string{"HOME", "ABOUT", "PRODUCTS", "SEARCH", "CONTACT US"}

const brandLabel = "Hello World"

// page builds the demo's node tree for one frame. The header collapses to a
// hamburger and a compact basket at the first breakpoint and shows the nav and
// the full basket from the second breakpoint up; the content grid gains a
// column per breakpoint.
type page struct {
	theme   Theme
	width   int
	bps     model.Breakpoints
	current *model.Breakpoint
	basket  Basket
	items   []ContentItem
	gate    func(responsive.Gate) responsive.Gate
}

// render returns the whole page. A gate naming an unknown breakpoint fails the
// frame.
func (p page) render() (string, error) {
	header, err := p.header()
	if err != nil {
		return "", err
	}
	root := p.gate(responsive.Gate{
		Current: p.current,
		Content: responsive.KeyedBuilder(func(key string) responsive.Node {
			return responsive.El("root", nil, nil, header, p.content(key))
		}),
	})
	return root.View()
}

func (p page) index(name string) int {
	for i, bp := range p.bps {
		if bp.Name == name {
			return i
		}
	}
	return 0
}

func (p page) compactBound() string {
	if len(p.bps) == 0 {
		return ""
	}
	return p.bps[0].Name
}

// fullBound is "" when there is no second breakpoint, in which case the full
// header is never shown.
func (p page) fullBound() string {
	if len(p.bps) < 2 {
		return ""
	}
	return p.bps[1].Name
}

func (p page) header() (responsive.Node, error) {
	compact := responsive.Bounds{MaxSize: p.compactBound()}

	hamburger, err := p.gate(responsive.Gate{
		Current: p.current,
		Bounds:  compact,
		Content: responsive.Elements{responsive.El("hamburger", nil, p.viewHamburger)},
	}).Render()
	if err != nil {
		return nil, err
	}
	compactBasket, err := p.gate(responsive.Gate{
		Current: p.current,
		Bounds:  compact,
		Content: p.basketBuilder(true),
	}).Render()
	if err != nil {
		return nil, err
	}

	upper := append(hamburger, responsive.El("brand", nil, p.viewBrand))
	upper = append(upper, compactBasket...)

	var lower []responsive.Node
	if full := p.fullBound(); full != "" {
		links := make([]responsive.Node, len(NavItems))
		for i, item := range NavItems {
			links[i] = responsive.Text(item)
		}
		nav, err := p.gate(responsive.Gate{
			Current: p.current,
			Bounds:  responsive.Bounds{MinSize: full},
			Content: responsive.Elements{responsive.El("nav", nil, p.viewNav, links...)},
		}).Render()
		if err != nil {
			return nil, err
		}
		fullBasket, err := p.gate(responsive.Gate{
			Current: p.current,
			Bounds:  responsive.Bounds{MinSize: full},
			Content: p.basketBuilder(false),
		}).Render()
		if err != nil {
			return nil, err
		}
		lower = append(nav, fullBasket...)
	}

	return responsive.El("header", nil, nil,
		responsive.El("upper-row", nil, p.viewRow, upper...),
		responsive.El("lower-row", nil, p.viewRow, lower...),
	), nil
}

func (p page) basketBuilder(compact bool) responsive.KeyedBuilder {
	return func(key string) responsive.Node {
		return responsive.El("basket", responsive.Props{
			responsive.ResponsiveKeyProp: key,
			"compact":                    compact,
		}, p.viewBasket)
	}
}

func (p page) content(key string) responsive.Node {
	items := make([]responsive.Node, len(p.items))
	for i, item := range p.items {
		items[i] = responsive.El("content-item", responsive.Props{
			responsive.ResponsiveKeyProp: key,
			"title":                      item.Title,
			"text":                       item.Text,
		}, p.viewItem)
	}
	return responsive.El("content", responsive.Props{responsive.ResponsiveKeyProp: key}, p.viewContent, items...)
}

// columns is one per breakpoint position, capped by the item count.
func (p page) columns(key string) int {
	cols := p.index(key) + 1
	if cols > len(p.items) {
		cols = len(p.items)
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (p page) cardWidth(key string) int {
	w := p.width/p.columns(key) - 2
	if w < 10 {
		w = 10
	}
	return w
}

func (p page) viewRow(_ *responsive.Element, children []string) string {
	var parts []string
	for _, c := range children {
		if c == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, strings.Repeat(" ", SpaceSM))
		}
		parts = append(parts, c)
	}
	if len(parts) == 0 {
		return ""
	}
	return truncateLines(lipgloss.JoinHorizontal(lipgloss.Top, parts...), p.width)
}

func (p page) viewHamburger(_ *responsive.Element, _ []string) string {
	return p.theme.Renderer.NewStyle().Foreground(p.theme.Primary).Bold(true).Render("≡")
}

func (p page) viewBrand(_ *responsive.Element, _ []string) string {
	return p.theme.Renderer.NewStyle().Foreground(p.theme.Primary).Bold(true).Render(brandLabel)
}

func (p page) viewNav(e *responsive.Element, children []string) string {
	style := p.theme.Renderer.NewStyle().Foreground(p.theme.BreakpointColor(p.index(e.ResponsiveKey())))
	sep := p.theme.Renderer.NewStyle().Foreground(p.theme.Border).Render(" │ ")
	return style.Render(strings.Join(children, sep))
}

func (p page) viewBasket(e *responsive.Element, _ []string) string {
	compact, _ := e.Props["compact"].(bool)
	style := p.theme.Renderer.NewStyle().Foreground(p.theme.BreakpointColor(p.index(e.ResponsiveKey())))
	return style.Render(p.basket.Summary(compact))
}

func (p page) viewItem(e *responsive.Element, _ []string) string {
	key := e.ResponsiveKey()
	color := p.theme.BreakpointColor(p.index(key))
	title := p.theme.Renderer.NewStyle().Bold(true).Foreground(color).Render(e.StringProp("title"))
	text := p.theme.Renderer.NewStyle().Foreground(p.theme.Subtext).Render(e.StringProp("text"))
	return p.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(p.cardWidth(key)).
		Render(title + "\n" + text)
}

func (p page) viewContent(e *responsive.Element, children []string) string {
	cols := p.columns(e.ResponsiveKey())
	var rows []string
	for start := 0; start < len(children); start += cols {
		end := start + cols
		if end > len(children) {
			end = len(children)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, children[start:end]...))
	}
	return strings.Join(rows, "\n")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// HelpOverlayModel shows keyboard shortcuts and the compiled media queries
type HelpOverlayModel struct {
	visible bool
	keys    KeyMap
	queries []responsive.Query
	theme   Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(keys KeyMap, theme Theme) HelpOverlayModel {
	return HelpOverlayModel{
		keys:  keys,
		theme: theme,
	}
}

// SetQueries sets the queries listed in the overlay
func (m *HelpOverlayModel) SetQueries(queries []responsive.Query) {
	m.queries = queries
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
}

// Hide makes the help overlay invisible
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("Responsive Viewer Help"))
	b.WriteString("\n\n")

	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"NAVIGATION", []key.Binding{m.keys.Up, m.keys.Down}},
		{"BASKET", []key.Binding{m.keys.Add, m.keys.Remove}},
		{"BREAKPOINTS", []key.Binding{m.keys.Copy, m.keys.Reload}},
		{"VIEW", []key.Binding{m.keys.Help, m.keys.Quit}},
	}
	for _, s := range sections {
		b.WriteString(sectionStyle.Render(s.title) + "\n")
		for _, kb := range s.bindings {
			h := kb.Help()
			b.WriteString("  " + keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n")
		}
		b.WriteString("\n")
	}

	if len(m.queries) > 0 {
		b.WriteString(sectionStyle.Render("MEDIA QUERIES") + "\n")
		for i, q := range m.queries {
			name := m.theme.Renderer.NewStyle().Foreground(m.theme.BreakpointColor(i)).Width(12).Render(q.Breakpoint.Name)
			b.WriteString("  " + name + descStyle.Render(q.Media) + "\n")
		}
		b.WriteString("\n")
	}

	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

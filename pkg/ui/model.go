// Package ui is the demo application: a Bubble Tea program whose header,
// basket and content grid are laid out with responsive gates driven by the
// terminal width.
package ui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bviewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/config"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/history"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/viewport"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/watcher"
)

// ConfigReloadedMsg carries a freshly loaded configuration file.
type ConfigReloadedMsg struct {
	File config.File
	Err  error
}

// LoadConfigCmd reads path and reports the result as a ConfigReloadedMsg.
func LoadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := config.Load(path)
		return ConfigReloadedMsg{File: f, Err: err}
	}
}

// Options configures a Model.
type Options struct {
	Config       config.File
	ConfigPath   string // reloaded with "r"; empty disables reloading
	InitialWidth float64
	FontSize     float64 // cell font size for em/rem; 0 means viewport.DefaultCellFontSize

	// ResizeDebounce delays breakpoint evaluation until resizing settles.
	// Zero applies every resize immediately. Requires SetSender.
	ResizeDebounce time.Duration

	Journal      *history.Journal
	Theme        Theme
	GlamourStyle string
	Clipboard    func(string) error // defaults to clipboard.WriteAll
}

// Model is the demo's root. It owns the observer and the tracker and holds the
// current breakpoint, which starts at the first configured breakpoint and is
// replaced by every tracker publication.
type Model struct {
	opts     Options
	cfg      config.File
	observer *viewport.Observer
	tracker  *responsive.Tracker
	gate     func(responsive.Gate) responsive.Gate

	current       *model.Breakpoint
	lastPublished string
	session       *model.Session

	basket  Basket
	keys    KeyMap
	help    help.Model
	overlay HelpOverlayModel
	body    bviewport.Model
	article *articleRenderer
	resize  *watcher.Debouncer
	send    func(tea.Msg)

	width, height int
	status        string
	err           error
	closed        bool
}

// NewModel validates the configuration, starts a journal session when a
// journal is given, and activates breakpoint tracking.
func NewModel(opts Options) (*Model, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.FontSize <= 0 {
		opts.FontSize = viewport.DefaultCellFontSize
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Theme.Renderer == nil {
		opts.Theme = NewTheme(lipgloss.DefaultRenderer())
	}

	keys := DefaultKeyMap()
	m := &Model{
		opts:     opts,
		cfg:      opts.Config,
		observer: viewport.New(opts.InitialWidth, viewport.WithFontSize(opts.FontSize)),
		keys:     keys,
		help:     help.New(),
		overlay:  NewHelpOverlayModel(keys, opts.Theme),
		body:     bviewport.New(0, 0),
		article:  newArticleRenderer(opts.GlamourStyle),
	}
	first := m.cfg.Breakpoints[0]
	m.current = &first

	if opts.ResizeDebounce > 0 {
		m.resize = watcher.NewDebouncer(opts.ResizeDebounce)
	}
	if opts.Journal != nil {
		s, err := opts.Journal.StartSession(m.cfg.Name, m.cfg.Units)
		if err != nil {
			return nil, err
		}
		m.session = s
	}
	if err := m.startTracker(); err != nil {
		return nil, err
	}
	return m, nil
}

// SetSender lets background work (debounced resizes, file watching) post
// messages to the running program, typically tea.Program.Send.
func (m *Model) SetSender(send func(tea.Msg)) {
	m.send = send
}

func (m *Model) startTracker() error {
	rc := m.cfg.Responsive()
	m.gate = responsive.WrapGate(rc)
	m.tracker = responsive.NewTracker(rc, m.observer, m.onBreakpoint)
	if err := m.tracker.Activate(); err != nil {
		return err
	}
	m.overlay.SetQueries(m.tracker.Queries())
	return nil
}

func (m *Model) onBreakpoint(bp model.Breakpoint) {
	m.current = &bp
	if bp.Name == m.lastPublished {
		return
	}
	from := m.lastPublished
	m.lastPublished = bp.Name
	if m.opts.Journal == nil || m.session == nil {
		return
	}
	if _, err := m.opts.Journal.Record(m.session, from, bp.Name, m.observer.Width()); err != nil {
		log.Printf("journal: %v", err)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.resize != nil && m.send != nil {
			width := float64(msg.Width)
			m.resize.Trigger(func() { m.send(viewport.ResizeMsg{Width: width}) })
		} else {
			m.observer.Update(msg)
		}
		m.refresh()
		return m, nil

	case viewport.ResizeMsg:
		m.observer.Update(msg)
		m.refresh()
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg)
		return m, nil

	case tea.KeyMsg:
		if m.overlay.IsVisible() {
			m.overlay, _ = m.overlay.Update(msg)
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.overlay.Show()
			return m, nil
		case key.Matches(msg, m.keys.Add):
			p := m.basket.Add()
			m.status = "Added " + p.Name
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if p, ok := m.basket.Remove(); ok {
				m.status = "Removed " + p.Name
			} else {
				m.status = "Basket is empty"
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyQueries()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			if m.opts.ConfigPath == "" {
				m.status = "No config file to reload"
				return m, nil
			}
			return m, LoadConfigCmd(m.opts.ConfigPath)
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// applyConfig swaps in a reloaded configuration. The old tracker is fully
// deactivated before the new one subscribes, so no listener outlives its
// configuration.
func (m *Model) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		m.status = "Config reload failed: " + msg.Err.Error()
		log.Printf("config reload: %v", msg.Err)
		return
	}
	if err := msg.File.Validate(); err != nil {
		m.status = "Config reload failed: " + err.Error()
		return
	}

	m.tracker.Deactivate()
	old := m.cfg
	m.cfg = msg.File
	if err := m.startTracker(); err != nil {
		log.Printf("config reload: %v", err)
		m.status = "Config reload failed: " + err.Error()
		m.cfg = old
		if err := m.startTracker(); err != nil {
			m.err = err
		}
		return
	}
	m.status = fmt.Sprintf("Reloaded %d breakpoints", len(m.cfg.Breakpoints))
	m.refresh()
}

func (m *Model) copyQueries() {
	queries := m.tracker.Queries()
	lines := make([]string, len(queries))
	for i, q := range queries {
		lines[i] = q.String()
	}
	if err := m.opts.Clipboard(strings.Join(lines, "\n")); err != nil {
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Copied %d media queries", len(queries))
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return int(m.observer.Width())
}

// refresh re-renders the scrollable body for the current size and breakpoint.
func (m *Model) refresh() {
	width := m.layoutWidth()
	m.body.Width = width
	m.body.Height = max(m.height-2, 1)

	p := page{
		theme:   m.opts.Theme,
		width:   width,
		bps:     m.cfg.Breakpoints,
		current: m.current,
		basket:  m.basket,
		items:   DefaultContent,
		gate:    m.gate,
	}
	content, err := p.render()
	m.err = err
	if err != nil {
		content = m.opts.Theme.Renderer.NewStyle().Foreground(m.opts.Theme.Danger).Render("Error: " + err.Error())
	}

	md := articleMarkdown(m.current, m.observer.Width(), m.cfg.Units, m.tracker.Queries())
	article, err := m.article.Render(md, width-2)
	if err != nil {
		log.Printf("article: %v", err)
		article = md
	}
	m.body.SetContent(content + "\n\n" + article)
}

// View implements tea.Model.
func (m *Model) View() string {
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.body.View(),
		m.statusBar(),
		truncateLines(m.help.View(m.keys), m.layoutWidth()),
	)
	if m.overlay.IsVisible() {
		return renderModalOverlay(base, m.overlay.View(), m.width, m.height)
	}
	return base
}

func (m *Model) statusBar() string {
	t := m.opts.Theme
	var parts []string

	name, index := "", 0
	if m.current != nil {
		name = m.current.Name
		for i, bp := range m.cfg.Breakpoints {
			if bp.Name == name {
				index = i
			}
		}
	}
	parts = append(parts, RenderBreakpointBadge(name, index, t))
	parts = append(parts, RenderMiniBar(m.widthFraction(), 10, t))
	parts = append(parts, t.Renderer.NewStyle().Foreground(t.Subtext).Render(
		fmt.Sprintf("%s %s", model.FormatWidth(m.observer.Width()), m.cfg.Units)))
	if m.tracker.Degraded() {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Warning).Render("static"))
	}
	if m.status != "" {
		parts = append(parts, t.Renderer.NewStyle().Foreground(t.Primary).Render(m.status))
	}
	return truncateLines(strings.Join(parts, " "), m.layoutWidth())
}

// widthFraction places the current width on the same axis as the exported
// map: a quarter past the largest finite breakpoint.
func (m *Model) widthFraction() float64 {
	maxFinite := 0.0
	for _, bp := range m.cfg.Breakpoints {
		if !math.IsInf(bp.Width, 1) && bp.Width > maxFinite {
			maxFinite = bp.Width
		}
	}
	if maxFinite == 0 {
		return 1
	}
	scale := 1.0
	if m.cfg.Units.Relative() {
		scale = m.cfg.BaseFontSize
		if scale <= 0 {
			scale = m.observer.BaseFontSize()
		}
	}
	return m.observer.Width() / scale / (maxFinite * 1.25)
}

// Close stops tracking and ends the journal session. It is safe to call more
// than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.resize != nil {
		m.resize.Cancel()
	}
	m.tracker.Deactivate()
	if m.opts.Journal != nil && m.session != nil {
		if err := m.opts.Journal.EndSession(m.session); err != nil {
			log.Printf("journal: %v", err)
		}
	}
}

// Current returns the breakpoint the view is laid out for.
func (m *Model) Current() (model.Breakpoint, bool) {
	if m.current == nil {
		return model.Breakpoint{}, false
	}
	return *m.current, true
}

// Observer returns the model's viewport observer.
func (m *Model) Observer() *viewport.Observer { return m.observer }

// Tracker returns the active tracker.
func (m *Model) Tracker() *responsive.Tracker { return m.tracker }

// Basket returns the basket contents.
func (m *Model) Basket() Basket { return m.basket }

// Status returns the last status message.
func (m *Model) Status() string { return m.status }

// Err returns the last render error, if any.
func (m *Model) Err() error { return m.err }

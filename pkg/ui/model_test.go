package ui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/config"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/history"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/viewport"
)

func testTheme() Theme {
	return NewTheme(lipgloss.NewRenderer(io.Discard))
}

func terminalConfig(t *testing.T) config.File {
	t.Helper()
	f, ok := config.Preset("terminal")
	if !ok {
		t.Fatal("missing terminal preset")
	}
	return f
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Config.Breakpoints == nil {
		opts.Config = terminalConfig(t)
	}
	opts.Theme = testTheme()
	opts.GlamourStyle = "notty"
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel error: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func resize(m *Model, width int) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: 60})
}

func TestNewModelPublishesMeasuredBreakpoint(t *testing.T) {
	tests := []struct {
		width    float64
		expected string
	}{
		{0, "narrow"},
		{80, "narrow"},
		{81, "medium"},
		{120, "wide"},
		{500, "ultra"},
	}
	for _, tt := range tests {
		m := newTestModel(t, Options{InitialWidth: tt.width})
		bp, ok := m.Current()
		if !ok || bp.Name != tt.expected {
			t.Errorf("width %v: expected %s, got %v", tt.width, tt.expected, bp)
		}
	}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	_, err := NewModel(Options{Config: config.File{}})
	if err == nil {
		t.Error("Expected error for empty breakpoint list")
	}
}

func TestResizeSwitchesHeader(t *testing.T) {
	m := newTestModel(t, Options{})

	resize(m, 70)
	view := m.View()
	if !strings.Contains(view, "≡") || !strings.Contains(view, "[0]") {
		t.Errorf("Expected hamburger and compact basket at narrow:\n%s", view)
	}
	if strings.Contains(view, "HOME") {
		t.Errorf("Expected no nav at narrow:\n%s", view)
	}

	resize(m, 110)
	if bp, _ := m.Current(); bp.Name != "wide" {
		t.Fatalf("Expected wide, got %s", bp.Name)
	}
	view = m.View()
	if !strings.Contains(view, "HOME") || !strings.Contains(view, "Basket: empty") {
		t.Errorf("Expected nav and full basket at wide:\n%s", view)
	}
	if strings.Contains(view, "≡") {
		t.Errorf("Expected no hamburger at wide:\n%s", view)
	}
	if !strings.Contains(view, "Hello World") {
		t.Errorf("Expected brand at every width:\n%s", view)
	}
}

func TestListenersBalancedAcrossLifecycle(t *testing.T) {
	m := newTestModel(t, Options{InitialWidth: 90})
	if got := m.Observer().ListenerCount(); got != 4 {
		t.Errorf("Expected 4 listeners, got %d", got)
	}

	web, _ := config.Preset("web")
	m.Update(ConfigReloadedMsg{File: web})
	if got := m.Observer().ListenerCount(); got != 3 {
		t.Errorf("Expected 3 listeners after reload, got %d", got)
	}

	m.Close()
	m.Close()
	if got := m.Observer().ListenerCount(); got != 0 {
		t.Errorf("Expected no listeners after Close, got %d", got)
	}
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(t, Options{InitialWidth: 110})

	web, _ := config.Preset("web")
	m.Update(ConfigReloadedMsg{File: web})
	if bp, _ := m.Current(); bp.Name != "small" {
		t.Errorf("Expected small under the web preset at 110 columns, got %s", bp.Name)
	}
	if !strings.Contains(m.Status(), "Reloaded 3") {
		t.Errorf("Unexpected status %q", m.Status())
	}

	m.Update(ConfigReloadedMsg{Err: errors.New("boom")})
	if !strings.Contains(m.Status(), "failed") {
		t.Errorf("Expected failure status, got %q", m.Status())
	}
	if !m.Tracker().Active() || len(m.Tracker().Queries()) != 3 {
		t.Error("Expected previous tracker kept after a failed reload")
	}
}

func TestReloadKeyLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp.yaml")
	web, _ := config.Preset("web")
	if err := config.Save(path, web); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	m := newTestModel(t, Options{ConfigPath: path})
	_, cmd := m.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("Expected reload command")
	}
	msg, ok := cmd().(ConfigReloadedMsg)
	if !ok || msg.Err != nil || msg.File.Name != "web" {
		t.Fatalf("Unexpected reload result %+v", msg)
	}

	noPath := newTestModel(t, Options{})
	if _, cmd := noPath.Update(keyMsg("r")); cmd != nil {
		t.Error("Expected no command without a config path")
	}
}

func TestBasketKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	resize(m, 120)

	m.Update(keyMsg("a"))
	m.Update(keyMsg("a"))
	if m.Basket().Count() != 2 {
		t.Errorf("Expected 2 items, got %d", m.Basket().Count())
	}
	if !strings.Contains(m.View(), "Basket: 2 item(s) · $20.50") {
		t.Errorf("Expected full basket summary:\n%s", m.View())
	}

	m.Update(keyMsg("x"))
	m.Update(keyMsg("x"))
	m.Update(keyMsg("x"))
	if m.Basket().Count() != 0 || m.Status() != "Basket is empty" {
		t.Errorf("Expected empty basket, got %d (%q)", m.Basket().Count(), m.Status())
	}
}

func TestCopyQueries(t *testing.T) {
	var copied string
	m := newTestModel(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	m.Update(keyMsg("y"))
	if !strings.Contains(copied, "narrow: (max-width: 80ch)") {
		t.Errorf("Expected compiled queries copied, got %q", copied)
	}
	if m.Status() != "Copied 4 media queries" {
		t.Errorf("Unexpected status %q", m.Status())
	}

	failing := newTestModel(t, Options{Clipboard: func(string) error { return errors.New("no clipboard") }})
	failing.Update(keyMsg("y"))
	if !strings.Contains(failing.Status(), "no clipboard") {
		t.Errorf("Expected copy failure status, got %q", failing.Status())
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})
	resize(m, 120)

	m.Update(keyMsg("?"))
	view := m.View()
	if !strings.Contains(view, "Responsive Viewer Help") || !strings.Contains(view, "MEDIA QUERIES") {
		t.Errorf("Expected help overlay:\n%s", view)
	}

	m.Update(keyMsg("a"))
	if m.Basket().Count() != 0 {
		t.Error("Expected key consumed by the overlay")
	}
	if strings.Contains(m.View(), "Responsive Viewer Help") {
		t.Error("Expected overlay closed")
	}
}

func TestQuitClosesModel(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.Tracker().Active() {
		t.Error("Expected tracker deactivated on quit")
	}
}

func TestDebouncedResize(t *testing.T) {
	m := newTestModel(t, Options{ResizeDebounce: 10 * time.Millisecond})
	sent := make(chan tea.Msg, 4)
	m.SetSender(func(msg tea.Msg) { sent <- msg })

	resize(m, 70)
	resize(m, 120)
	if m.Observer().Width() != 0 {
		t.Errorf("Expected width applied only after debounce, got %v", m.Observer().Width())
	}

	select {
	case msg := <-sent:
		rm, ok := msg.(viewport.ResizeMsg)
		if !ok || rm.Width != 120 {
			t.Fatalf("Expected settled resize to 120, got %#v", msg)
		}
		m.Update(msg)
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for debounced resize")
	}
	if bp, _ := m.Current(); bp.Name != "wide" {
		t.Errorf("Expected wide, got %s", bp.Name)
	}

	select {
	case msg := <-sent:
		t.Errorf("Expected a single settled resize, also got %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestJournalRecordsOnlyTransitions(t *testing.T) {
	j, err := history.Open(filepath.Join(t.TempDir(), "history.db"), history.DriverPure)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer j.Close()

	m := newTestModel(t, Options{Journal: j, InitialWidth: 70})
	resize(m, 110)
	resize(m, 120)
	resize(m, 60)
	m.Close()

	transitions, err := j.Transitions(0)
	if err != nil {
		t.Fatalf("Transitions error: %v", err)
	}
	got := make([]string, len(transitions))
	for i, tr := range transitions {
		got[i] = tr.From + ">" + tr.To
	}
	if strings.Join(got, ",") != ">narrow,narrow>wide,wide>narrow" {
		t.Errorf("Unexpected transitions %v", got)
	}

	sessions, err := j.Sessions()
	if err != nil || len(sessions) != 1 {
		t.Fatalf("Expected one session, got %v %v", sessions, err)
	}
	if sessions[0].EndedAt == nil || sessions[0].Transitions != 3 || sessions[0].ConfigName != "terminal" {
		t.Errorf("Unexpected session %+v", sessions[0])
	}
}

package viewport

import (
	"math"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

func compile(t *testing.T) []responsive.Query {
	t.Helper()
	queries, err := responsive.Compile(model.Breakpoints{
		{Name: "narrow", Width: 80},
		{Name: "wide", Width: math.Inf(1)},
	}, model.UnitCols, 1)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return queries
}

func TestObserverFiresOnlyOnFlip(t *testing.T) {
	o := New(60)
	queries := compile(t)
	narrow := o.MatchMedia(queries[0])

	calls := 0
	narrow.AddListener(func() { calls++ })

	if !narrow.Matches() {
		t.Fatal("Expected narrow to match at 60 columns")
	}
	o.Resize(70)
	if calls != 0 {
		t.Errorf("Expected no call without a flip, got %d", calls)
	}
	o.Resize(120)
	if calls != 1 || narrow.Matches() {
		t.Errorf("Expected one call and no match at 120, got %d calls, matches=%v", calls, narrow.Matches())
	}
	o.Resize(80)
	if calls != 2 || !narrow.Matches() {
		t.Errorf("Expected second call and a match at 80, got %d calls, matches=%v", calls, narrow.Matches())
	}
}

func TestObserverRemoveDuringDispatch(t *testing.T) {
	o := New(60)
	queries := compile(t)
	list := o.MatchMedia(queries[0])

	var second responsive.ListenerID
	secondCalls := 0
	list.AddListener(func() { list.RemoveListener(second) })
	second = list.AddListener(func() { secondCalls++ })

	o.Resize(200)
	if secondCalls != 0 {
		t.Errorf("Listener removed during dispatch still ran %d times", secondCalls)
	}
	if o.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener left, got %d", o.ListenerCount())
	}
}

func TestObserverReattachesListAfterPrune(t *testing.T) {
	o := New(60)
	queries := compile(t)
	list := o.MatchMedia(queries[1])

	id := list.AddListener(func() {})
	list.RemoveListener(id)
	if o.ListenerCount() != 0 {
		t.Fatalf("Expected no listeners, got %d", o.ListenerCount())
	}

	o.Resize(100)
	calls := 0
	list.AddListener(func() { calls++ })
	if !list.Matches() {
		t.Error("Expected re-attached list to pick up the current width")
	}
	o.Resize(10)
	if calls != 1 {
		t.Errorf("Expected re-attached listener to fire once, got %d", calls)
	}
}

func TestObserverUpdateHandlesTeaMessages(t *testing.T) {
	o := New(0)
	if !o.Update(tea.WindowSizeMsg{Width: 132, Height: 40}) {
		t.Error("Expected WindowSizeMsg handled")
	}
	if o.Width() != 132 {
		t.Errorf("Expected width 132, got %v", o.Width())
	}
	if !o.Update(ResizeMsg{Width: 90}) || o.Width() != 90 {
		t.Errorf("Expected ResizeMsg handled, width %v", o.Width())
	}
	if o.Update(tea.KeyMsg{}) {
		t.Error("Expected key message ignored")
	}
}

func TestForTerminalWithoutTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if _, err := TerminalWidth(f); err != ErrNotTerminal {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
	o := ForTerminal(f)
	if o.Supported() {
		t.Error("Expected unsupported observer for a regular file")
	}
	if o.BaseFontSize() != DefaultCellFontSize {
		t.Errorf("Expected cell font size, got %v", o.BaseFontSize())
	}
}

package viewport

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update feeds Bubble Tea window-size messages to the observer. It reports
// whether msg was a resize. Call it from the model's Update so listeners run on
// the program's event loop.
func (o *Observer) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.Resize(float64(msg.Width))
		return true
	case ResizeMsg:
		o.Resize(msg.Width)
		return true
	}
	return false
}

// ResizeMsg carries a width from outside Bubble Tea's own resize handling,
// e.g. a debounced or simulated resize.
type ResizeMsg struct {
	Width float64
}

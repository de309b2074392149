package viewport

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a terminal size is requested for a file
// that is not a terminal.
var ErrNotTerminal = errors.New("viewport: not a terminal")

// TerminalWidth returns the column count of the terminal behind f.
func TerminalWidth(f *os.File) (int, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, ErrNotTerminal
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, err
	}
	return width, nil
}

// ForTerminal creates an observer measured from the terminal behind f. Widths
// are columns and one cell counts as one em. When f is not a terminal the
// observer reports no support, so trackers run in degraded mode.
func ForTerminal(f *os.File, opts ...Option) *Observer {
	width, err := TerminalWidth(f)
	if err != nil {
		opts = append([]Option{WithoutSupport()}, opts...)
	}
	opts = append([]Option{WithFontSize(DefaultCellFontSize)}, opts...)
	return New(float64(width), opts...)
}

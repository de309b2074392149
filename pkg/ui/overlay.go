package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	reflowtrunc "github.com/muesli/reflow/truncate"
)

// cutAfterWidth returns the portion of s after skipping startWidth visual cells.
// s is expected to be plain text; styled text loses its leading escape codes.
func cutAfterWidth(s string, startWidth int) string {
	if startWidth <= 0 {
		return s
	}
	w := 0
	for i, r := range s {
		if w >= startWidth {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}

// truncateLines cuts every line of s to at most width cells, keeping ANSI
// styling intact.
func truncateLines(s string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.PrintableRuneWidth(line) > width {
			lines[i] = reflowtrunc.StringWithTail(line, uint(width), "…")
		}
	}
	return strings.Join(lines, "\n")
}

// renderModalOverlay renders modal centered over base, preserving the
// background on both sides.
func renderModalOverlay(base, modal string, width, height int) string {
	modalWidth := lipgloss.Width(modal)
	modalHeight := lipgloss.Height(modal)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	modalLines := strings.Split(modal, "\n")

	startRow := (height - modalHeight) / 2
	startCol := (width - modalWidth) / 2
	if startRow < 0 {
		startRow = 0
	}
	if startCol < 0 {
		startCol = 0
	}

	for i, modalLine := range modalLines {
		row := startRow + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLine := baseLines[row]
		baseLineWidth := ansi.PrintableRuneWidth(baseLine)
		modalLineWidth := ansi.PrintableRuneWidth(modalLine)

		var newLine strings.Builder

		// Left portion: truncate base to startCol
		if startCol > 0 {
			if baseLineWidth >= startCol {
				newLine.WriteString(reflowtrunc.String(baseLine, uint(startCol)))
			} else {
				newLine.WriteString(baseLine)
				newLine.WriteString(strings.Repeat(" ", startCol-baseLineWidth))
			}
		}

		newLine.WriteString(modalLine)

		// Right portion: skip past modal and keep the remaining base content
		rightStart := startCol + modalLineWidth
		if rightStart < baseLineWidth {
			newLine.WriteString(cutAfterWidth(baseLine, rightStart))
		}

		baseLines[row] = newLine.String()
	}

	return strings.Join(baseLines, "\n")
}

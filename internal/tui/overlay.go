package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// compositeCenter draws card over base in the middle of the screen, used for
// the compose modal.
func compositeCenter(base, card string, width, height int) string {
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(card)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
	return compositeOntoBase(base, placed, width, height)
}

// compositeDock draws panel over base anchored to the bottom-right corner,
// used for the floating assistant overlay.
func compositeDock(base, panel string, width, height int) string {
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(panel)
	placed := lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, framed)
	return compositeOntoBase(base, placed, width, height)
}

func compositeOntoBase(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := fitLines(base, width, height)
	overlayLines := fitLines(overlay, width, height)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		start, end, ok := overlaySegment(overlayLines[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		segment := ansi.Truncate(dropColumns(overlayLines[i], start), end-start, "")
		right := dropColumns(baseLines[i], end)
		out[i] = padRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// overlaySegment finds the column span of the non-blank part of an overlay
// line, so only the panel itself masks the base.
func overlaySegment(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	end = ansi.StringWidth(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

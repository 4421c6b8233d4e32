package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders a simple monospaced table with optional colorization using ColorConfig.
// Column widths are computed from the visible (ANSI-stripped) cell widths.
func Table(c *ColorConfig, headers []string, rows [][]string) string {
	w := make([]int, len(headers))
	for i, h := range headers {
		w[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := range r {
			if i < len(w) && lipgloss.Width(r[i]) > w[i] {
				w[i] = lipgloss.Width(r[i])
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(c.Label(h), w[i]))
	}
	b.WriteString("\n")

	sepLen := 0
	for i := range w {
		sepLen += w[i]
		if i < len(w)-1 {
			sepLen += 2
		}
	}
	b.WriteString(c.Separator(sepLen))
	b.WriteString("\n")

	for _, r := range rows {
		for i := range w {
			if i > 0 {
				b.WriteString("  ")
			}
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			b.WriteString(padCell(c.Value(cell), w[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padCell(s string, width int) string {
	v := lipgloss.Width(s)
	if v >= width {
		return s
	}
	return s + strings.Repeat(" ", width-v)
}

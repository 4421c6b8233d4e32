package ui

import (
	"strings"
)

// ErrorMessage represents a structured, actionable error to present to users.
type ErrorMessage struct {
	Problem string   // one-line problem statement
	Hints   []string // optional hints (e.g., commands to try)
}

// Format renders the error using the color theme. It does not include ANSI
// codes when colors are disabled (NO_COLOR or dumb terminal).
func (e ErrorMessage) Format(c *ColorConfig) string {
	var b strings.Builder
	b.WriteString(c.StatusIcon("error"))
	b.WriteString(" ")
	b.WriteString(e.Problem)
	b.WriteString("\n")
	for _, it := range e.Hints {
		b.WriteString("  · ")
		b.WriteString(c.Description(it))
		b.WriteString("\n")
	}
	return b.String()
}

// PrintError writes the structured error to ErrOut.
func (p Printer) PrintError(e ErrorMessage) {
	_, _ = p.ErrOut.Write([]byte(e.Format(p.Colors)))
}

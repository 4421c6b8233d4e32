package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles for each kind of output.
type Theme struct {
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Info        lipgloss.Style
	Header      lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Version     lipgloss.Style
	Description lipgloss.Style
	Separator   lipgloss.Style
}

// DefaultTheme returns the default styles.
func DefaultTheme() *Theme {
	return &Theme{
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Label:       lipgloss.NewStyle().Bold(true),
		Value:       lipgloss.NewStyle(),
		Version:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Separator:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ColorConfig manages color output settings
type ColorConfig struct {
	Enabled bool
	Theme   *Theme
}

// NewColorConfig enables colors unless NO_COLOR is set or TERM is dumb/unset.
func NewColorConfig() *ColorConfig {
	noColor := os.Getenv("NO_COLOR") != ""
	term := os.Getenv("TERM")

	return &ColorConfig{
		Enabled: !noColor && term != "dumb" && term != "",
		Theme:   DefaultTheme(),
	}
}

// Apply renders text with style if colors are enabled
func (c *ColorConfig) Apply(style lipgloss.Style, text string) string {
	if !c.Enabled {
		return text
	}
	return style.Render(text)
}

func (c *ColorConfig) Success(text string) string { return c.Apply(c.Theme.Success, text) }

func (c *ColorConfig) Warning(text string) string { return c.Apply(c.Theme.Warning, text) }

func (c *ColorConfig) Error(text string) string { return c.Apply(c.Theme.Error, text) }

func (c *ColorConfig) Info(text string) string { return c.Apply(c.Theme.Info, text) }

func (c *ColorConfig) Header(text string) string { return c.Apply(c.Theme.Header, text) }

func (c *ColorConfig) Label(text string) string { return c.Apply(c.Theme.Label, text) }

func (c *ColorConfig) Value(text string) string { return c.Apply(c.Theme.Value, text) }

func (c *ColorConfig) Version(text string) string { return c.Apply(c.Theme.Version, text) }

func (c *ColorConfig) Description(text string) string { return c.Apply(c.Theme.Description, text) }

// FormatKeyValue formats a key-value pair with proper colors
func (c *ColorConfig) FormatKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", c.Label(key), c.Value(value))
}

// Separator returns a colored separator line
func (c *ColorConfig) Separator(width int) string {
	return c.Apply(c.Theme.Separator, strings.Repeat("─", width))
}

// StatusIcon returns the prefix used for a status line.
func (c *ColorConfig) StatusIcon(status string) string {
	switch strings.ToLower(status) {
	case "success":
		return c.Success("✓")
	case "warning":
		return c.Warning("!")
	case "error":
		return c.Error("✗")
	case "info":
		return c.Info("ℹ")
	case "debug":
		return c.Description("·")
	default:
		return c.Description("○")
	}
}

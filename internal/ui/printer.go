package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Printer centralizes output formatting for commands.
// - Respects --output (text|json|yaml)
// - Uses ColorConfig for styling when printing text
// - Warnings and errors go to ErrOut so structured stdout stays parseable
type Printer struct {
	format string
	Colors *ColorConfig
	Out    io.Writer
	ErrOut io.Writer
}

func NewPrinter(format string) Printer {
	if format == "" {
		format = FormatText
	}
	return Printer{format: format, Colors: NewColorConfig(), Out: os.Stdout, ErrOut: os.Stderr}
}

// Format returns the selected output format.
func (p Printer) Format() string { return p.format }

// Textf prints formatted text to Out (always text path).
func (p Printer) Textf(format string, a ...any) { fmt.Fprintf(p.Out, format, a...) }

// JSON pretty-prints a JSON value to Out.
func (p Printer) JSON(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML prints v as a YAML document to Out.
func (p Printer) YAML(v any) error {
	enc := yaml.NewEncoder(p.Out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Structured writes v in the selected structured format. It reports false,
// without writing anything, when the format is text.
func (p Printer) Structured(v any) (bool, error) {
	switch p.format {
	case FormatJSON:
		return true, p.JSON(v)
	case FormatYAML:
		return true, p.YAML(v)
	default:
		return false, nil
	}
}

// Success prints a success line with themed prefix.
func (p Printer) Success(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Colors.StatusIcon("success"), msg)
}

// Info prints an informational line.
func (p Printer) Info(msg string) {
	fmt.Fprintln(p.Out, p.Colors.StatusIcon("info"), msg)
}

// Debug prints a dimmed diagnostic line to ErrOut.
func (p Printer) Debug(msg string) {
	fmt.Fprintln(p.ErrOut, p.Colors.StatusIcon("debug"), p.Colors.Description(msg))
}

// Warn prints a warning line to ErrOut.
func (p Printer) Warn(msg string) {
	fmt.Fprintln(p.ErrOut, p.Colors.StatusIcon("warning"), msg)
}

// Error prints an error line to ErrOut.
func (p Printer) Error(msg string) {
	fmt.Fprintln(p.ErrOut, p.Colors.StatusIcon("error"), msg)
}

// Header prints a section header.
func (p Printer) Header(title string) {
	fmt.Fprintln(p.Out, p.Colors.Header(title))
}

// KeyValueLine prints a key-value pair with proper formatting
func (p Printer) KeyValueLine(key, value string) {
	fmt.Fprintln(p.Out, p.Colors.FormatKeyValue(key, value))
}

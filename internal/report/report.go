// Package report is the diagnostic sink the scanner writes lexical errors to.
// The scanner takes a Reporter at construction instead of going through
// process-wide state, so independent scans stay independently testable.
package report

import (
	"fmt"
	"io"
)

type Reporter interface {
	Error(line int, message string)
}

// Diagnostic is one reported lexical error, tagged with the 1-based line
// number it was detected on.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
}

// Collector accumulates diagnostics in report order.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Error(line int, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Line: line, Message: message})
}

func (c *Collector) HadError() bool {
	return len(c.Diagnostics) > 0
}

func (c *Collector) Count() int {
	return len(c.Diagnostics)
}

// Console prints each diagnostic to Out as it arrives.
type Console struct {
	Out      io.Writer
	hadError bool
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) Error(line int, message string) {
	fmt.Fprintln(c.Out, Diagnostic{Line: line, Message: message})
	c.hadError = true
}

func (c *Console) HadError() bool {
	return c.hadError
}

// Reset clears the error flag, so a REPL can keep one Console across lines.
func (c *Console) Reset() {
	c.hadError = false
}

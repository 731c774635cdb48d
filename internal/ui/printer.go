// Package ui holds terminal presentation helpers: colored status lines,
// a TTY-aware spinner, and the commit message preview.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultRuleWidth = 60

var (
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

// Printer writes status lines for the workflow.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, Err: errOut}
}

// Info writes a plain status line to stderr.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Err, format+"\n", args...)
}

// Warn writes a yellow warning line to stderr.
func (p *Printer) Warn(format string, args ...any) {
	warnColor.Fprintf(p.Err, format+"\n", args...)
}

// Success writes a green status line to stderr.
func (p *Printer) Success(format string, args ...any) {
	successColor.Fprintf(p.Err, format+"\n", args...)
}

// Preview prints the commit message between horizontal rules sized to the
// terminal width, so multi-line messages read as one block.
func (p *Printer) Preview(message string) {
	rule := strings.Repeat("-", ruleWidth())
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, message)
	fmt.Fprintln(p.Out, rule)
}

func ruleWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > defaultRuleWidth {
		return defaultRuleWidth
	}
	return width
}

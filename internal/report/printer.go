// Package report renders the demonstration's console output: framed
// section headers and formatted value lines on a single writer.
package report

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 70

// Printer writes report lines to one destination so the whole run can be
// captured and compared byte for byte.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section prints a framed header: a blank line, a rule of '=' characters,
// the title indented one space, and a closing rule.
func (p *Printer) Section(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n %s\n%s\n", rule, title, rule)
}

// Linef prints a single formatted line.
func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

package ir

import (
	"fmt"
	"strings"
)

// Printer provides pretty-printing for triad listings
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the numbered listing of triads, one per line: "1) := (c, 1.15)".
func Print(triads []Triad) string {
	p := NewPrinter()
	p.printTriads(triads)
	return p.output.String()
}

// PrintCompilation lists every stage of a pipeline run under its own header.
func PrintCompilation(c *Compilation) string {
	p := NewPrinter()
	p.printStage("RAW", c.Raw)
	if c.Reduced != nil {
		p.printStage("REDUCED", c.Reduced)
	}
	if c.Optimized != nil {
		p.printStage("OPTIMIZED", c.Optimized)
	}
	p.printStage("FINAL", c.Final)
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printStage(name string, triads []Triad) {
	p.writeLine("%s (%d triads):", name, len(triads))
	p.indent++
	p.printTriads(triads)
	p.indent--
	p.writeLine("")
}

func (p *Printer) printTriads(triads []Triad) {
	for i, t := range triads {
		p.writeLine("%d) %s", i+1, t)
	}
}

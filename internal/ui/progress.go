package ui

import (
	"fmt"
	"io"
)

// Progress prints run steps as a simple counter display.
type Progress struct {
	out   io.Writer
	total int
	done  int
}

// NewProgress creates a progress printer for n steps.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Step marks the next step completed and prints it.
func (p *Progress) Step(label string) {
	p.done++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.done, p.total, label)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return &Table{w: tw}
}

// Row appends a row of values. The number of values should match the number of headers.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// Fields renders aligned "name: value" pairs, one per line.
type Fields struct {
	w *tabwriter.Writer
}

// NewFields creates a field writer for name/value output.
func NewFields(out io.Writer) *Fields {
	return &Fields{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
}

// Add appends one field.
func (f *Fields) Add(name string, value any) {
	_, _ = fmt.Fprintf(f.w, "%s:\t%v\n", name, value)
}

// Flush writes the buffered output.
func (f *Fields) Flush() error {
	return f.w.Flush()
}

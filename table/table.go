// Package table lays out fixed-width text columns.
package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Align selects which side of the column a value is pushed against
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// ColumnSpec defines a column's properties
type ColumnSpec struct {
	Header   string
	Width    int   // Minimum column width
	Align    Align // Side the value is padded against
	Truncate bool  // Cut values longer than Width instead of widening the row
}

// Table formats rows against a fixed set of columns separated by one space
type Table struct {
	columns []ColumnSpec
}

// New creates a table with the given column specifications
func New(cols ...ColumnSpec) *Table {
	return &Table{columns: cols}
}

// FormatHeader returns the header line without a trailing newline
func (t *Table) FormatHeader() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	return t.format(headers)
}

// FormatRow returns one row without a trailing newline. Missing cells are
// blank, extra cells are dropped.
func (t *Table) FormatRow(cells ...string) string {
	return t.format(cells)
}

func (t *Table) format(cells []string) string {
	formatted := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(cells) {
			val = cells[i]
		}
		if col.Truncate && col.Width > 0 && len(val) > col.Width {
			val = truncate(val, col.Width)
		}
		formatted[i] = pad(val, col.Width, col.Align)
	}
	return strings.Join(formatted, " ")
}

// RenderHeader writes the header line to w
func (t *Table) RenderHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, t.FormatHeader())
	return err
}

// RenderRow writes one row to w
func (t *Table) RenderRow(w io.Writer, cells ...string) error {
	_, err := fmt.Fprintln(w, t.FormatRow(cells...))
	return err
}

// truncate cuts s to at most width bytes without splitting a UTF-8 sequence
func truncate(s string, width int) string {
	cut := width
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// pad pads s with spaces to width. Values already at or past width are returned as is.
func pad(s string, width int, align Align) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if align == AlignRight {
		return fill + s
	}
	return s + fill
}

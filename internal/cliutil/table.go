package cliutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sendcast/sendcast-cli/internal/styles"
)

// Column defines a table column with a header and optional width.
type Column struct {
	Header string
	Width  int            // 0 means no padding
	Style  lipgloss.Style // optional style for cell values
}

// Table renders formatted table output to a writer.
type Table struct {
	Columns []Column
	Indent  string
	w       io.Writer
}

// NewTable creates a new table writing to w.
func NewTable(w io.Writer, columns ...Column) *Table {
	return &Table{Columns: columns, Indent: "  ", w: w}
}

// PrintHeader prints the styled header row and separator line.
func (t *Table) PrintHeader() {
	headerStyle := styles.HeaderStyle.MarginBottom(0)
	headers := make([]string, len(t.Columns))
	totalWidth := len(t.Indent)

	for i, col := range t.Columns {
		if col.Width > 0 {
			headers[i] = headerStyle.Render(fmt.Sprintf("%-*s", col.Width, col.Header))
			totalWidth += col.Width + 2
		} else {
			headers[i] = headerStyle.Render(col.Header)
			totalWidth += len(col.Header) + 2
		}
	}

	fmt.Fprintln(t.w)
	fmt.Fprintf(t.w, "%s%s\n", t.Indent, strings.Join(headers, "  "))
	fmt.Fprintln(t.w, strings.Repeat("-", totalWidth))
}

// PrintRow prints a data row with values aligned to column widths.
// If a column has a Style set, it is applied to the cell value.
func (t *Table) PrintRow(values ...string) {
	cells := make([]string, len(values))
	for i, val := range values {
		cell := val
		if i < len(t.Columns) {
			col := t.Columns[i]
			if col.Width > 0 {
				cell = fmt.Sprintf("%-*s", col.Width, Truncate(val, col.Width))
			}
			if col.Style.Value() != "" {
				cell = col.Style.Render(cell)
			}
		}
		cells[i] = cell
	}
	fmt.Fprintf(t.w, "%s%s\n", t.Indent, strings.Join(cells, "  "))
}

// Truncate shortens a string to max length with ellipsis.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

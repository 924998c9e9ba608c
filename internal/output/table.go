package output

import (
	"fmt"
	"strings"
)

// Align controls horizontal cell alignment within a column.
type Align int

// Column alignments.
const (
	AlignLeft Align = iota
	AlignRight
)

// Table is a simple styled table renderer. Numeric columns can be
// right-aligned via SetAlign.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	aligns  []Align
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
		aligns:  make([]Align, len(headers)),
	}
}

// SetAlign sets the alignment for a column by index. Out-of-range indexes
// are ignored.
func (t *Table) SetAlign(col int, a Align) *Table {
	if col >= 0 && col < len(t.aligns) {
		t.aligns[col] = a
	}
	return t
}

// AddRow adds a row of values to the table. The number of values should
// match the number of headers.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row.
	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleHeader.Render(t.pad(h, i)))
	}
	sb.WriteString("\n")

	// Separator.
	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	// Data rows.
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(t.pad(cell, i))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad aligns a cell within its column width.
func (t *Table) pad(s string, col int) string {
	width := t.widths[col]
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if t.aligns[col] == AlignRight {
		return fill + s
	}
	return s + fill
}

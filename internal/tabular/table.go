// Package tabular reads and writes the tabular file formats the converter
// operates on. Formats register themselves by file extension; callers look
// them up by path and get a uniform in-memory table back.
package tabular

import (
	"fmt"
	"strings"
)

// Table is an ordered, in-memory tabular dataset: one header row and zero
// or more data rows. Rows may be ragged; cells beyond a row's length read
// as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the named column, matching
// case-insensitively after header cleanup. Returns false if absent.
func (t *Table) ColumnIndex(name string) (int, bool) {
	want := strings.ToLower(CleanCell(name))
	for i, h := range t.Header {
		if strings.ToLower(CleanCell(h)) == want {
			return i, true
		}
	}
	return 0, false
}

// Column returns the values of column i across all rows, in row order.
// Rows shorter than i contribute an empty string.
func (t *Table) Column(i int) []string {
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

// AppendColumn adds a new column with the given header and values, one
// value per existing row. Short rows are padded so every row carries the
// new value at the same position.
func (t *Table) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}

	width := len(t.Header)
	t.Header = append(t.Header, name)

	for r := range t.Rows {
		for len(t.Rows[r]) < width {
			t.Rows[r] = append(t.Rows[r], "")
		}
		t.Rows[r] = append(t.Rows[r], values[r])
	}
	return nil
}

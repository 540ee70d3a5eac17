package domain

import "strings"

// Table is an in-memory, column-named table of string cells, as read from a CSV or XLSX file.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewTable builds a table from a header and rows.
func NewTable(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Indexes resolves each named column, reporting the names that are absent.
func (t *Table) Indexes(names ...string) ([]int, []string) {
	idx := make([]int, len(names))
	var missing []string
	for i, n := range names {
		idx[i] = t.Index(n)
		if idx[i] < 0 {
			missing = append(missing, n)
		}
	}
	return idx, missing
}

// Cell returns the trimmed value at row r, column c, or "" when the row is short.
func (t *Table) Cell(r, c int) string {
	row := t.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[c])
}

// Clone returns a copy that shares no slices with t.
func (t *Table) Clone() *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if t.Rows == nil {
		return out
	}
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

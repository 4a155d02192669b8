// Package dataset holds the in-memory tabular structure consumed by the
// scoring pipeline. Cells are untyped; numeric interpretation is applied
// lazily and leniently by consumers via Float.
package dataset

import "fmt"

// Table is a row-major table with ordered, uniquely named columns. Cells may
// hold numeric values, strings, or nil. A Table handed to a scorer must not
// be mutated afterwards.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty table with the given column names.
func New(columns ...string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table needs at least one column")
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// FromMaps builds a table with the given column order from one map per row.
// Keys absent from a row become nil cells; keys outside columns are ignored.
func FromMaps(columns []string, rows []map[string]any) (*Table, error) {
	t, err := New(columns...)
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		cells := make([]any, len(columns))
		for i, name := range columns {
			cells[i] = m[name]
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AppendRow adds one row; the cell count must match the column count.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, append([]any(nil), cells...))
	return nil
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumRows reports the number of rows appended so far.
func (t *Table) NumRows() int { return len(t.rows) }

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the value at (row, column). The second return is false when
// the row index is out of range or the column does not exist.
func (t *Table) Cell(row int, column string) (any, bool) {
	idx, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return nil, false
	}
	return t.rows[row][idx], true
}

// Column returns a copy of the named column's cells in row order.
func (t *Table) Column(name string) ([]any, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

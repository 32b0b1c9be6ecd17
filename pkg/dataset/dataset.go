// Package dataset provides a small in-memory tabular container used by the
// cleaning pipeline. A Dataset is an ordered set of named columns with
// positionally aligned rows, mutated in place by cleaning strategies.
package dataset

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Keep selects which member of a duplicate group survives.
type Keep string

const (
	// KeepFirst keeps the first occurrence of each duplicate group.
	KeepFirst Keep = "first"
	// KeepLast keeps the last occurrence of each duplicate group.
	KeepLast Keep = "last"
	// KeepNone drops every member of any duplicate group.
	KeepNone Keep = "none"
)

// ColumnError reports an operation against a column the dataset does not have.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("dataset has no column %q", e.Column)
}

// Dataset is an ordered collection of named columns. Rows are positionally
// aligned across columns; every column always has the same length.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty dataset with the given column names.
func New(columns ...string) *Dataset {
	d := &Dataset{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		d.index[c] = i
	}
	return d
}

// Append adds a row. The number of values must match the number of columns.
func (d *Dataset) Append(row ...any) error {
	if len(row) != len(d.columns) {
		return fmt.Errorf("row has %d values, dataset has %d columns", len(row), len(d.columns))
	}
	d.rows = append(d.rows, append([]any(nil), row...))
	return nil
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// HasColumn reports whether the dataset has a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns the values of the named column in row order.
func (d *Dataset) Column(name string) ([]any, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, &ColumnError{Column: name}
	}
	values := make([]any, len(d.rows))
	for r, row := range d.rows {
		values[r] = row[i]
	}
	return values, nil
}

// Value returns a single cell.
func (d *Dataset) Value(row int, column string) (any, error) {
	i, ok := d.index[column]
	if !ok {
		return nil, &ColumnError{Column: column}
	}
	if row < 0 || row >= len(d.rows) {
		return nil, fmt.Errorf("row %d out of range (%d rows)", row, len(d.rows))
	}
	return d.rows[row][i], nil
}

// Row returns the values of row i in column order.
func (d *Dataset) Row(i int) ([]any, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, fmt.Errorf("row %d out of range (%d rows)", i, len(d.rows))
	}
	return append([]any(nil), d.rows[i]...), nil
}

// Record returns row i as a column-name keyed map.
func (d *Dataset) Record(i int) (map[string]any, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, fmt.Errorf("row %d out of range (%d rows)", i, len(d.rows))
	}
	rec := make(map[string]any, len(d.columns))
	for c, name := range d.columns {
		rec[name] = d.rows[i][c]
	}
	return rec, nil
}

// Records returns all rows as column-name keyed maps.
func (d *Dataset) Records() []map[string]any {
	recs := make([]map[string]any, len(d.rows))
	for i, row := range d.rows {
		rec := make(map[string]any, len(d.columns))
		for c, name := range d.columns {
			rec[name] = row[c]
		}
		recs[i] = rec
	}
	return recs
}

// DropColumns removes the named columns in place. All names are checked
// before anything is removed, so an unknown column leaves the dataset
// untouched.
func (d *Dataset) DropColumns(names ...string) error {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		i, ok := d.index[name]
		if !ok {
			return &ColumnError{Column: name}
		}
		drop[i] = true
	}

	columns := make([]string, 0, len(d.columns)-len(drop))
	for i, c := range d.columns {
		if !drop[i] {
			columns = append(columns, c)
		}
	}
	for r, row := range d.rows {
		kept := make([]any, 0, len(columns))
		for i, v := range row {
			if !drop[i] {
				kept = append(kept, v)
			}
		}
		d.rows[r] = kept
	}
	d.setColumns(columns)
	return nil
}

// RenameColumns renames columns in place using an old-name to new-name
// mapping. Names absent from the dataset are ignored; renaming onto a name
// that already exists is an error.
func (d *Dataset) RenameColumns(mapping map[string]string) error {
	columns := d.Columns()
	for old, name := range mapping {
		i, ok := d.index[old]
		if !ok {
			continue
		}
		if _, taken := d.index[name]; taken && name != old {
			return fmt.Errorf("cannot rename %q to %q: column already exists", old, name)
		}
		columns[i] = name
	}
	d.setColumns(columns)
	return nil
}

// DropRows removes the rows at the given indexes in place. Out-of-range
// indexes are ignored; surviving rows keep their relative order.
func (d *Dataset) DropRows(indexes []int) {
	if len(indexes) == 0 {
		return
	}
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		drop[i] = true
	}
	kept := d.rows[:0]
	for i, row := range d.rows {
		if !drop[i] {
			kept = append(kept, row)
		}
	}
	d.rows = kept
}

// Filter keeps only the rows for which pred returns true, preserving their
// relative order.
func (d *Dataset) Filter(pred func(i int) bool) {
	kept := d.rows[:0]
	for i, row := range d.rows {
		if pred(i) {
			kept = append(kept, row)
		}
	}
	d.rows = kept
}

// Duplicates returns the row indexes, in ascending order, that would be
// dropped by deduplicating over the subset columns with the given keep
// policy. Duplicate identity is equality of values across the subset columns
// only; occurrence order within the dataset decides which row is first or
// last.
func (d *Dataset) Duplicates(subset []string, keep Keep) ([]int, error) {
	cols := make([]int, len(subset))
	for n, name := range subset {
		i, ok := d.index[name]
		if !ok {
			return nil, &ColumnError{Column: name}
		}
		cols[n] = i
	}

	groups := make(map[string][]int)
	order := make([]string, 0)
	for r, row := range d.rows {
		key := rowKey(row, cols)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	var drop []int
	for _, key := range order {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		switch keep {
		case KeepFirst:
			drop = append(drop, members[1:]...)
		case KeepLast:
			drop = append(drop, members[:len(members)-1]...)
		case KeepNone:
			drop = append(drop, members...)
		default:
			return nil, fmt.Errorf("unknown keep policy %q (use first, last or none)", keep)
		}
	}
	sort.Ints(drop)
	return drop, nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	clone := New(d.columns...)
	clone.rows = make([][]any, len(d.rows))
	for i, row := range d.rows {
		clone.rows[i] = append([]any(nil), row...)
	}
	return clone
}

// Equal reports whether two datasets have the same columns, in the same
// order, with the same values.
func (d *Dataset) Equal(other *Dataset) bool {
	if other == nil {
		return false
	}
	if len(d.columns) != len(other.columns) || len(d.rows) != len(other.rows) {
		return false
	}
	for i, c := range d.columns {
		if other.columns[i] != c {
			return false
		}
	}
	for i, row := range d.rows {
		if !reflect.DeepEqual(row, other.rows[i]) {
			return false
		}
	}
	return true
}

func (d *Dataset) setColumns(columns []string) {
	d.columns = columns
	d.index = make(map[string]int, len(columns))
	for i, c := range columns {
		d.index[c] = i
	}
}

// rowKey builds the duplicate-identity key for a row over the given column
// positions. Each field is tagged with its dynamic type and length-prefixed,
// so the key is injective: values of different types never collide, and a
// separator byte inside a value cannot shift field boundaries.
func rowKey(row []any, cols []int) string {
	var sb strings.Builder
	for _, c := range cols {
		v := row[c]
		s := fmt.Sprint(v)
		fmt.Fprintf(&sb, "%T:%d:%s\x1f", v, len(s), s)
	}
	return sb.String()
}

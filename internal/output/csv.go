package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// CSVWriter streams records as CSV rows. The header is the configured column
// order, or the sorted keys of the first record when no columns were given.
type CSVWriter struct {
	w       *csv.Writer
	columns []string
	wrote   bool
}

// NewCSVWriter creates a CSV writer. columns may be nil.
func NewCSVWriter(w io.Writer, columns []string) *CSVWriter {
	return &CSVWriter{
		w:       csv.NewWriter(w),
		columns: columns,
	}
}

// Write writes a single record as a CSV row, emitting the header first.
func (w *CSVWriter) Write(record map[string]any) error {
	if !w.wrote {
		if len(w.columns) == 0 {
			w.columns = sortedKeys(record)
		}
		if err := w.w.Write(w.columns); err != nil {
			return err
		}
		w.wrote = true
	}

	row := make([]string, len(w.columns))
	for i, c := range w.columns {
		v, ok := record[c]
		if !ok {
			return fmt.Errorf("record has no value for column %q", c)
		}
		if s, isString := v.(string); isString {
			row[i] = s
		} else {
			row[i] = fmt.Sprint(v)
		}
	}
	return w.w.Write(row)
}

// Flush writes any buffered rows. A writer that never saw a record still
// emits the header when columns were configured.
func (w *CSVWriter) Flush() error {
	if !w.wrote && len(w.columns) > 0 {
		if err := w.w.Write(w.columns); err != nil {
			return err
		}
		w.wrote = true
	}
	w.w.Flush()
	return w.w.Error()
}

func sortedKeys(record map[string]any) []string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

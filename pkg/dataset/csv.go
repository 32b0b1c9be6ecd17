package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV builds a dataset from CSV data. The first record is the header row
// and becomes the column names; every value is stored as a string.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	d := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}
		if err := d.Append(row...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// WriteCSV writes the dataset as CSV with a header row of column names.
// Non-string values are formatted with fmt.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.columns); err != nil {
		return err
	}
	record := make([]string, len(d.columns))
	for _, row := range d.rows {
		for i, v := range row {
			if s, ok := v.(string); ok {
				record[i] = s
			} else {
				record[i] = fmt.Sprint(v)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

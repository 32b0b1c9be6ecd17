package cleaning

// OptionRemoveColumns names the columns RemoveColumns drops.
const OptionRemoveColumns = "remove_columns"

// RemoveColumns drops the named columns from the dataset. A column that does
// not exist is a dataset-level error, surfaced as a pipeline error.
type RemoveColumns struct{}

func (RemoveColumns) Name() string { return "remove_columns" }

func (RemoveColumns) RequiredOptions() []string {
	return []string{OptionRemoveColumns}
}

func (RemoveColumns) Purpose() string {
	return "Removes the named columns from the dataset."
}

func (RemoveColumns) OptionDocs() []OptionDoc {
	return []OptionDoc{
		{
			Name:        OptionRemoveColumns,
			Description: "columns to remove",
			Example:     `remove_columns: [col1, col2]`,
		},
	}
}

func (s RemoveColumns) Clean(run *Run) error {
	columns, err := run.Options.StringSlice(OptionRemoveColumns)
	if err != nil {
		return err
	}
	return run.Dataset.DropColumns(columns...)
}

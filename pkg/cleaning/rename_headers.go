package cleaning

// OptionRenameHeadersHeaderMap maps old column names to new ones.
const OptionRenameHeadersHeaderMap = "rename_headers_header_map"

// RenameHeaders renames dataset columns using an old-name to new-name map.
// Map keys that do not match a column are ignored.
type RenameHeaders struct{}

func (RenameHeaders) Name() string { return "rename_headers" }

func (RenameHeaders) RequiredOptions() []string {
	return []string{OptionRenameHeadersHeaderMap}
}

func (RenameHeaders) Purpose() string {
	return "Renames dataset columns using an old-name to new-name mapping."
}

func (RenameHeaders) OptionDocs() []OptionDoc {
	return []OptionDoc{
		{
			Name:        OptionRenameHeadersHeaderMap,
			Description: "old column name to new column name mapping",
			Example:     `rename_headers_header_map: {old_header: new_header}`,
		},
	}
}

func (s RenameHeaders) Clean(run *Run) error {
	mapping, err := run.Options.StringMap(OptionRenameHeadersHeaderMap)
	if err != nil {
		return err
	}
	return run.Dataset.RenameColumns(mapping)
}

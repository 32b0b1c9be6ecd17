package cleaning

import "fmt"

// Option names for FilterValidForeignKeys.
const (
	OptionFilterValidFKDataset = "filter_valid_fk_dataset"
	OptionFilterValidPKField   = "filter_valid_pk_field"
	OptionFilterValidFKField   = "filter_valid_fk_field"
)

// FilterValidForeignKeys drops rows whose foreign-key value does not appear
// in the primary-key column of a referenced dataset. Useful when imported
// data must join against data that already exists.
type FilterValidForeignKeys struct{}

func (FilterValidForeignKeys) Name() string { return "filter_valid_foreign_keys" }

func (FilterValidForeignKeys) RequiredOptions() []string {
	return []string{OptionFilterValidFKDataset, OptionFilterValidPKField, OptionFilterValidFKField}
}

func (FilterValidForeignKeys) Purpose() string {
	return "Drops rows whose foreign-key value has no matching primary key in a referenced dataset."
}

func (FilterValidForeignKeys) OptionDocs() []OptionDoc {
	return []OptionDoc{
		{
			Name:        OptionFilterValidFKDataset,
			Description: "the referenced dataset holding the primary keys (*dataset.Dataset)",
		},
		{
			Name:        OptionFilterValidPKField,
			Description: "primary-key column in the referenced dataset",
			Example:     `filter_valid_pk_field: id`,
		},
		{
			Name:        OptionFilterValidFKField,
			Description: "foreign-key column in the dataset being cleaned",
			Example:     `filter_valid_fk_field: user_id`,
		},
	}
}

func (s FilterValidForeignKeys) Clean(run *Run) error {
	ref, err := run.Options.Dataset(OptionFilterValidFKDataset)
	if err != nil {
		return err
	}
	pkField, err := run.Options.String(OptionFilterValidPKField)
	if err != nil {
		return err
	}
	fkField, err := run.Options.String(OptionFilterValidFKField)
	if err != nil {
		return err
	}

	pks, err := ref.Column(pkField)
	if err != nil {
		return fmt.Errorf("referenced dataset: %w", err)
	}
	valid := make(map[any]bool, len(pks))
	for _, pk := range pks {
		valid[pk] = true
	}

	fks, err := run.Dataset.Column(fkField)
	if err != nil {
		return err
	}
	run.Dataset.Filter(func(i int) bool {
		return valid[fks[i]]
	})
	return nil
}

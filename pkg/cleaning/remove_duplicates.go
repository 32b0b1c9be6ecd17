package cleaning

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/datasweep/datasweep/pkg/dataset"
)

// Option names for RemoveDuplicates. Option names are prefixed with the
// strategy name because the caller-supplied variant shares one flat map
// across every strategy in the pipeline.
const (
	OptionRemoveDuplicatesSubsetFields = "remove_duplicates_subset_fields"
	OptionRemoveDuplicatesKeep         = "remove_duplicates_keep"
)

var validate = validator.New()

// RemoveDuplicates deletes duplicate rows from the dataset. Duplicate
// identity is equality of values across the subset columns only; columns
// outside the subset are never considered.
type RemoveDuplicates struct{}

func (RemoveDuplicates) Name() string { return "remove_duplicates" }

func (RemoveDuplicates) RequiredOptions() []string {
	return []string{OptionRemoveDuplicatesSubsetFields, OptionRemoveDuplicatesKeep}
}

func (RemoveDuplicates) Purpose() string {
	return "Deletes duplicate rows, keeping the first, the last or none of each duplicate group."
}

func (RemoveDuplicates) OptionDocs() []OptionDoc {
	return []OptionDoc{
		{
			Name:        OptionRemoveDuplicatesSubsetFields,
			Description: "columns that define duplicate identity",
			Example:     `remove_duplicates_subset_fields: [id, name]`,
		},
		{
			Name:        OptionRemoveDuplicatesKeep,
			Description: "which occurrence of a duplicate survives: first, last or none",
			Example:     `remove_duplicates_keep: last`,
		},
	}
}

// CanUse extends the default check with keep-policy validation, so a bad
// policy is reported before any row is dropped.
func (s RemoveDuplicates) CanUse(run *Run) (bool, string) {
	if ok, reason := defaultCanUse(s, run); !ok {
		return false, reason
	}
	keep, err := run.Options.String(OptionRemoveDuplicatesKeep)
	if err != nil {
		return false, err.Error()
	}
	if err := validate.Var(keep, "oneof=first last none"); err != nil {
		return false, fmt.Sprintf("option %q must be one of first, last or none, got %q",
			OptionRemoveDuplicatesKeep, keep)
	}
	return true, ""
}

func (s RemoveDuplicates) Clean(run *Run) error {
	subset, err := run.Options.StringSlice(OptionRemoveDuplicatesSubsetFields)
	if err != nil {
		return err
	}
	keep, err := run.Options.String(OptionRemoveDuplicatesKeep)
	if err != nil {
		return err
	}

	drop, err := run.Dataset.Duplicates(subset, dataset.Keep(keep))
	if err != nil {
		return err
	}
	run.Dataset.DropRows(drop)
	return nil
}

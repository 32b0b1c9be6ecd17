package cleaning

import "fmt"

const (
	statusColumn   = "status"
	statusDisabled = "DISABLED"
)

// RemoveDisabled drops rows whose status column holds the DISABLED sentinel,
// matched exactly and case-sensitively. It declares no required options and
// instead overrides the eligibility check with a domain precondition: the
// dataset must have a status column.
type RemoveDisabled struct{}

func (RemoveDisabled) Name() string { return "remove_disabled" }

func (RemoveDisabled) RequiredOptions() []string { return nil }

func (RemoveDisabled) Purpose() string {
	return "Drops rows whose status column equals DISABLED."
}

func (RemoveDisabled) OptionDocs() []OptionDoc { return nil }

func (s RemoveDisabled) CanUse(run *Run) (bool, string) {
	if ok, reason := defaultCanUse(s, run); !ok {
		return false, reason
	}
	if !run.Dataset.HasColumn(statusColumn) {
		return false, fmt.Sprintf("dataset has no %q column, required to identify disabled rows", statusColumn)
	}
	return true, ""
}

func (s RemoveDisabled) Clean(run *Run) error {
	statuses, err := run.Dataset.Column(statusColumn)
	if err != nil {
		return err
	}
	run.Dataset.Filter(func(i int) bool {
		return statuses[i] != statusDisabled
	})
	return nil
}

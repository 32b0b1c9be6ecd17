package cleaning

import (
	"errors"
	"strings"
	"testing"

	"github.com/datasweep/datasweep/pkg/dataset"
)

func TestValidate_DefaultCheckPasses(t *testing.T) {
	run := &Run{
		Dataset: dataset.New("id"),
		Options: Options{
			OptionRemoveColumns: []string{"id"},
		},
	}
	if err := Validate(RemoveColumns{}, run); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_DefaultCheckFails(t *testing.T) {
	run := &Run{Dataset: dataset.New("id"), Options: Options{}}

	err := Validate(RemoveColumns{}, run)
	if err == nil {
		t.Fatal("Validate() should fail when a required option is absent")
	}

	var elig *EligibilityError
	if !errors.As(err, &elig) {
		t.Fatalf("error = %v, want *EligibilityError", err)
	}
	if elig.Strategy != "remove_columns" {
		t.Errorf("EligibilityError.Strategy = %q", elig.Strategy)
	}
	if !strings.Contains(elig.Reason, OptionRemoveColumns) {
		t.Errorf("reason %q should name the missing option", elig.Reason)
	}
	// The reason carries the documented example so the error is actionable.
	if !strings.Contains(elig.Reason, "remove_columns: [col1, col2]") {
		t.Errorf("reason %q should carry a corrective example", elig.Reason)
	}
}

func TestValidate_ReasonCarriedVerbatim(t *testing.T) {
	s := stubStrategy{
		name:   "stub",
		canUse: func(*Run) (bool, string) { return false, "exact reason text" },
	}
	err := Validate(s, &Run{Dataset: dataset.New()})

	var elig *EligibilityError
	if !errors.As(err, &elig) {
		t.Fatalf("error = %v, want *EligibilityError", err)
	}
	if elig.Reason != "exact reason text" {
		t.Errorf("Reason = %q, want the override's reason verbatim", elig.Reason)
	}
}

func TestValidate_Reentrant(t *testing.T) {
	// The gate is stateless: the same inputs produce the same verdict twice.
	run := &Run{Dataset: dataset.New("id"), Options: Options{}}

	first := Validate(RemoveColumns{}, run)
	second := Validate(RemoveColumns{}, run)
	if first == nil || second == nil {
		t.Fatal("both calls should fail")
	}
	if first.Error() != second.Error() {
		t.Errorf("verdicts differ: %q vs %q", first, second)
	}
}

func TestInfo_WithOptions(t *testing.T) {
	info := Info(RemoveDuplicates{})

	for _, want := range []string{
		"remove_duplicates",
		"Deletes duplicate rows",
		OptionRemoveDuplicatesSubsetFields,
		OptionRemoveDuplicatesKeep,
		"first, last or none",
	} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() missing %q:\n%s", want, info)
		}
	}
}

func TestInfo_NoRequiredOptions(t *testing.T) {
	info := Info(RemoveDisabled{})
	if !strings.Contains(info, "No required options") {
		t.Errorf("Info() = %q", info)
	}
}

// stubStrategy lets tests inject CanUse and Clean behavior.
type stubStrategy struct {
	name     string
	required []string
	canUse   func(*Run) (bool, string)
	clean    func(*Run) error
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) RequiredOptions() []string { return s.required }

func (s stubStrategy) CanUse(run *Run) (bool, string) {
	if s.canUse == nil {
		return defaultCanUse(s, run)
	}
	return s.canUse(run)
}

func (s stubStrategy) Clean(run *Run) error {
	if s.clean == nil {
		return nil
	}
	return s.clean(run)
}

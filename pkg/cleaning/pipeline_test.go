package cleaning

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/datasweep/datasweep/pkg/dataset"
	"github.com/datasweep/datasweep/pkg/schema"
)

// schemaWithCleaning builds a schema whose cleaning block holds the given
// option values.
func schemaWithCleaning(values map[string]any) schema.Schema {
	return schema.Schema{
		Name:     "customers",
		Cleaning: schema.NewSettings(values),
	}
}

func TestClean_EmptyStrategyList(t *testing.T) {
	d := statusDataset(t)
	before := d.Clone()

	got, err := Clean(d, nil, nil)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != d {
		t.Error("Clean() should return the same dataset")
	}
	if !d.Equal(before) {
		t.Error("empty strategy list must leave the dataset unchanged")
	}
}

func TestClean_FailsBeforeMutation(t *testing.T) {
	// Only one of the two required options is supplied: the pipeline must
	// fail naming the other, before the dataset is touched.
	d := statusDataset(t)
	before := d.Clone()

	_, err := CleanWithValues(d, []Strategy{RemoveDuplicates{}}, map[string]any{
		OptionRemoveDuplicatesSubsetFields: []string{"id"},
	})

	var missing *MissingOptionsError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingOptionsError", err)
	}
	if !reflect.DeepEqual(missing.Options, []string{OptionRemoveDuplicatesKeep}) {
		t.Errorf("Options = %v, want the missing keep option", missing.Options)
	}
	if !d.Equal(before) {
		t.Error("a failed run must not mutate the dataset before validation")
	}
}

func TestClean_SchemaVariantFailsBeforeMutation(t *testing.T) {
	d := statusDataset(t)
	before := d.Clone()

	src := SchemaSource{Schema: schemaWithCleaning(map[string]any{
		OptionRemoveDuplicatesSubsetFields: []string{"id"},
	})}
	_, err := Clean(d, []Strategy{RemoveDuplicates{}}, src)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingFieldError", err)
	}
	if missing.Field != OptionRemoveDuplicatesKeep {
		t.Errorf("Field = %q", missing.Field)
	}
	if !d.Equal(before) {
		t.Error("a failed run must not mutate the dataset before validation")
	}
}

func TestClean_SequenceEqualsChainedCalls(t *testing.T) {
	options := map[string]any{
		OptionRemoveColumns: []string{"status"},
	}

	// One pipeline running both strategies.
	pipelined := statusDataset(t)
	if _, err := CleanWithValues(pipelined, []Strategy{RemoveDisabled{}, RemoveColumns{}}, options); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	// Two single-strategy pipelines chained by hand.
	chained := statusDataset(t)
	if _, err := CleanWithValues(chained, []Strategy{RemoveDisabled{}}, options); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if _, err := CleanWithValues(chained, []Strategy{RemoveColumns{}}, options); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if !pipelined.Equal(chained) {
		t.Error("pipeline composition should equal manually chained runs")
	}
}

func TestClean_StopsAtFirstFailure(t *testing.T) {
	// The first strategy drops the status column, so the second becomes
	// ineligible. The pipeline stops there; the first mutation stays.
	d := statusDataset(t)

	_, err := CleanWithValues(d, []Strategy{RemoveColumns{}, RemoveDisabled{}}, map[string]any{
		OptionRemoveColumns: []string{"status"},
	})

	var elig *EligibilityError
	if !errors.As(err, &elig) {
		t.Fatalf("error = %v, want *EligibilityError", err)
	}
	if elig.Strategy != "remove_disabled" {
		t.Errorf("failed strategy = %q, want remove_disabled", elig.Strategy)
	}
	// No rollback: the column drop from step one remains.
	if d.HasColumn("status") {
		t.Error("completed strategies are not rolled back")
	}
}

func TestClean_ExecutionFailurePropagates(t *testing.T) {
	d := dataset.New("id")

	_, err := CleanWithValues(d, []Strategy{RemoveColumns{}}, map[string]any{
		OptionRemoveColumns: []string{"missing"},
	})

	// The dataset-layer error is still reachable through the pipeline error.
	var colErr *dataset.ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("error = %v, want *dataset.ColumnError", err)
	}
	if colErr.Column != "missing" {
		t.Errorf("Column = %q", colErr.Column)
	}
}

func TestClean_NilStrategy(t *testing.T) {
	d := statusDataset(t)
	before := d.Clone()

	_, err := Clean(d, []Strategy{RemoveDisabled{}, nil}, nil)
	if err == nil || !strings.Contains(err.Error(), "nil") {
		t.Fatalf("error = %v, want a nil-strategy error", err)
	}
	if !d.Equal(before) {
		t.Error("a nil strategy must be detected before any mutation")
	}
}

func TestClean_SchemaVariant(t *testing.T) {
	d := statusDataset(t)

	src := schemaWithCleaning(map[string]any{
		OptionRemoveDuplicatesSubsetFields: []any{"id"}, // as YAML would decode it
		OptionRemoveDuplicatesKeep:         "last",
	})
	if _, err := CleanWithSchema(d, []Strategy{RemoveDuplicates{}}, src); err != nil {
		t.Fatalf("CleanWithSchema() error = %v", err)
	}

	wantRows(t, d, [][]any{{2, "ENABLED"}, {1, "DISABLED"}})
}

func TestClean_StrategyReadsIncidentalOption(t *testing.T) {
	// A strategy may probe options beyond its declared required set.
	d := statusDataset(t)

	firstX := stubStrategy{
		name: "first_x_rows",
		clean: func(run *Run) error {
			n := run.Dataset.Len()
			if v, ok := run.Options.Get("x_top_rows"); ok {
				n = v.(int)
			}
			run.Dataset.Filter(func(i int) bool { return i < n })
			return nil
		},
	}

	if _, err := CleanWithValues(d, []Strategy{firstX}, map[string]any{"x_top_rows": 2}); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

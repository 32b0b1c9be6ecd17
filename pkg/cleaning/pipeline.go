package cleaning

import (
	"fmt"

	"github.com/datasweep/datasweep/internal/logger"
	"github.com/datasweep/datasweep/pkg/dataset"
	"github.com/datasweep/datasweep/pkg/schema"
)

// Clean applies the strategies to the dataset in order. For each strategy it
// resolves options from the source, runs the validation gate and then the
// strategy itself; the dataset is shared and mutated across steps with no
// copies between them.
//
// The pipeline stops at the first strategy whose validation or execution
// fails and returns the error together with the dataset, which at that point
// holds the partially mutated state left by the strategies that already
// completed. There is no rollback; callers that need safety should Clone the
// dataset before running. An empty strategy list returns the dataset
// unchanged.
func Clean(ds *dataset.Dataset, strategies []Strategy, src Source) (*dataset.Dataset, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is nil")
	}
	for i, s := range strategies {
		if s == nil {
			return ds, fmt.Errorf("strategy at position %d is nil", i)
		}
	}
	if src == nil {
		src = ValuesSource(nil)
	}

	// All required options must be resolvable before anything mutates.
	if err := src.Check(strategies); err != nil {
		return ds, err
	}

	for _, s := range strategies {
		opts, err := src.Resolve(s)
		if err != nil {
			return ds, err
		}

		run := &Run{Dataset: ds, Options: opts}
		if err := Validate(s, run); err != nil {
			return ds, err
		}

		rows, columns := ds.Len(), len(ds.Columns())
		if err := s.Clean(run); err != nil {
			return ds, fmt.Errorf("%s: %w", s.Name(), err)
		}

		logger.Debug("strategy applied",
			"strategy", s.Name(),
			"rows_before", rows,
			"rows_after", ds.Len(),
			"columns_before", columns,
			"columns_after", len(ds.Columns()))
	}

	return ds, nil
}

// CleanWithSchema runs the pipeline with options read from the schema's
// cleaning settings block.
func CleanWithSchema(ds *dataset.Dataset, strategies []Strategy, s schema.Schema) (*dataset.Dataset, error) {
	return Clean(ds, strategies, SchemaSource{Schema: s})
}

// CleanWithValues runs the pipeline with a flat caller-supplied option map
// honored identically across all strategies.
func CleanWithValues(ds *dataset.Dataset, strategies []Strategy, values map[string]any) (*dataset.Dataset, error) {
	return Clean(ds, strategies, ValuesSource(values))
}

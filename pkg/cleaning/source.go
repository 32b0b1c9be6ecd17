package cleaning

import (
	"fmt"

	"github.com/datasweep/datasweep/pkg/schema"
)

// Source resolves the option values available to strategies. The two
// implementations differ in their missing-option diagnostics:
//
//   - SchemaSource distinguishes a schema with no cleaning block at all from
//     a block that is missing one key; the corrective action differs.
//   - ValuesSource reports every missing option in a single error.
type Source interface {
	// Check verifies, before any mutation, that the source can satisfy the
	// required options of every strategy in the pipeline.
	Check(strategies []Strategy) error

	// Resolve returns the options for one strategy. The returned mapping
	// carries the source's full option set, not just the required subset.
	Resolve(s Strategy) (Options, error)
}

// SchemaSource reads options from the cleaning settings block attached to a
// schema. The schema is read-only to the pipeline.
type SchemaSource struct {
	Schema schema.Schema
}

// Check fails with an error wrapping ErrNoSettings when the schema has no
// cleaning block, or with a MissingFieldError naming the first absent option
// when the block exists but is incomplete.
func (src SchemaSource) Check(strategies []Strategy) error {
	for _, s := range strategies {
		if _, err := src.Resolve(s); err != nil {
			return err
		}
	}
	return nil
}

// Resolve reads each required option from the cleaning block by exact name.
func (src SchemaSource) Resolve(s Strategy) (Options, error) {
	block := src.Schema.Cleaning
	if block == nil {
		return nil, fmt.Errorf(
			"schema %q: %w; add a cleaning block to the schema, e.g.\n\ncleaning:\n  remove_duplicates_subset_fields: [id]\n  remove_duplicates_keep: last",
			src.Schema.Name, ErrNoSettings,
		)
	}
	for _, name := range s.RequiredOptions() {
		if !block.Has(name) {
			return nil, &MissingFieldError{
				Strategy: s.Name(),
				Field:    name,
				Example:  optionExample(s, name),
			}
		}
	}
	return Options(block.Values()), nil
}

// ValuesSource is a flat option map supplied by the caller at invocation
// time and applied identically to every strategy in the pipeline; each
// strategy picks out only the names it cares about.
type ValuesSource map[string]any

// Check collects the union of required options across all strategies and
// fails with one MissingOptionsError enumerating every absent name.
func (src ValuesSource) Check(strategies []Strategy) error {
	var missing []string
	seen := make(map[string]bool)
	for _, s := range strategies {
		for _, name := range s.RequiredOptions() {
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := src[name]; !ok {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		return &MissingOptionsError{Options: missing}
	}
	return nil
}

// Resolve hands every strategy a copy of the full caller-supplied mapping.
func (src ValuesSource) Resolve(s Strategy) (Options, error) {
	opts := make(Options, len(src))
	for k, v := range src {
		opts[k] = v
	}
	return opts, nil
}

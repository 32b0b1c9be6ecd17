package cleaning

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/datasweep/datasweep/pkg/dataset"
)

// Options is the resolved option mapping available to a strategy for a
// single pipeline step. It carries the full set of values from the
// configuration source, not just the strategy's required subset, so a
// strategy may opportunistically read incidental keys it never declared.
//
// Accessors are fallible: reading an absent name returns an error wrapping
// ErrUnknownOption, never a zero value.
type Options map[string]any

// Get returns the raw value for an option name and whether it is present.
func (o Options) Get(name string) (any, bool) {
	v, ok := o[name]
	return v, ok
}

// Has reports whether the option is present.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns the option coerced to a string.
func (o Options) String(name string) (string, error) {
	v, ok := o[name]
	if !ok {
		return "", unknownOption(name)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("option %q: %w", name, err)
	}
	return s, nil
}

// StringSlice returns the option coerced to a slice of strings.
func (o Options) StringSlice(name string) ([]string, error) {
	v, ok := o[name]
	if !ok {
		return nil, unknownOption(name)
	}
	s, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", name, err)
	}
	return s, nil
}

// StringMap returns the option coerced to a string-to-string map.
func (o Options) StringMap(name string) (map[string]string, error) {
	v, ok := o[name]
	if !ok {
		return nil, unknownOption(name)
	}
	m, err := cast.ToStringMapStringE(v)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", name, err)
	}
	return m, nil
}

// Dataset returns the option as a *dataset.Dataset. Used by strategies that
// take another dataset as input, such as filter_valid_foreign_keys.
func (o Options) Dataset(name string) (*dataset.Dataset, error) {
	v, ok := o[name]
	if !ok {
		return nil, unknownOption(name)
	}
	ds, ok := v.(*dataset.Dataset)
	if !ok {
		return nil, fmt.Errorf("option %q: expected *dataset.Dataset, got %T", name, v)
	}
	return ds, nil
}

func unknownOption(name string) error {
	return fmt.Errorf("%w: %q was neither declared as required nor supplied", ErrUnknownOption, name)
}

package schema

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Settings is the cleaning settings block of a schema. Its keys are strategy
// option names (e.g. remove_duplicates_subset_fields) and its values are the
// option values for those strategies.
//
// A nil *Settings on a Schema means the schema has no cleaning block at all,
// which the pipeline reports differently from a present block that is
// missing one key.
type Settings struct {
	values map[string]any
}

// NewSettings creates a settings block from an option-name keyed map.
func NewSettings(values map[string]any) *Settings {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Settings{values: copied}
}

// Lookup returns the value for an option name and whether it is present.
func (s *Settings) Lookup(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether the block carries a value for the option name.
func (s *Settings) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Values returns a copy of the full option map.
func (s *Settings) Values() map[string]any {
	copied := make(map[string]any, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// UnmarshalYAML decodes the cleaning block from a YAML mapping.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	var values map[string]any
	if err := node.Decode(&values); err != nil {
		return err
	}
	s.values = values
	return nil
}

// MarshalYAML encodes the block back to a YAML mapping.
func (s *Settings) MarshalYAML() (any, error) {
	return s.values, nil
}

// UnmarshalJSON decodes the cleaning block from a JSON object.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.values = values
	return nil
}

// MarshalJSON encodes the block back to a JSON object.
func (s *Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.values)
}

package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/datasweep/datasweep/pkg/dataset"
)

// Schema defines the target shape of a dataset. The optional Cleaning block
// carries option values for cleaning strategies; it is read-only to the
// pipeline.
type Schema struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Cleaning    *Settings `json:"cleaning,omitempty" yaml:"cleaning,omitempty"`

	validate *validator.Validate
}

// FromFile loads a schema from a JSON or YAML file.
func FromFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to read schema file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FromJSON(data)
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return Schema{}, fmt.Errorf("unsupported schema file format: %s", ext)
	}
}

// FromJSON creates a schema from JSON data.
func FromJSON(data []byte) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("failed to parse JSON schema: %w", err)
	}
	s.validate = validator.New()
	return s, nil
}

// FromYAML creates a schema from YAML data.
func FromYAML(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("failed to parse YAML schema: %w", err)
	}
	s.validate = validator.New()
	return s, nil
}

// Field returns the field definition for a column name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks a dataset against the schema: every required field must
// exist as a column, and column values must satisfy the field's validator
// tags. Returns nil when the dataset conforms.
func (s Schema) Validate(ds *dataset.Dataset) []ValidationError {
	var errs []ValidationError

	for _, field := range s.Fields {
		if !ds.HasColumn(field.Name) {
			if field.Required {
				errs = append(errs, ValidationError{
					Field:   field.Name,
					Row:     -1,
					Message: "required column is missing",
				})
			}
			continue
		}

		if len(field.Validators) == 0 {
			continue
		}

		tag := strings.Join(field.Validators, ",")
		values, err := ds.Column(field.Name)
		if err != nil {
			continue
		}
		for row, value := range values {
			if err := s.validator().Var(value, tag); err != nil {
				errs = append(errs, ValidationError{
					Field:   field.Name,
					Row:     row,
					Message: fmt.Sprintf("value does not satisfy %q", tag),
					Value:   value,
				})
			}
		}
	}

	return errs
}

func (s *Schema) validator() *validator.Validate {
	if s.validate == nil {
		s.validate = validator.New()
	}
	return s.validate
}

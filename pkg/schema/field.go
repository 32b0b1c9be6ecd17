// Package schema describes the target shape of tabular data and carries the
// optional cleaning settings block consumed by the cleaning pipeline.
package schema

// FieldType represents the logical type of a schema field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
)

// Field represents a single column in the schema.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type,omitempty" yaml:"type,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Validators  []string  `json:"validators,omitempty" yaml:"validators,omitempty"` // go-playground/validator tags
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Row     int
	Message string
	Value   any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

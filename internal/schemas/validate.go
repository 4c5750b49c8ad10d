// Package schemas provides JSON Schema validation for external keyword
// extraction service responses.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed service_response_normalized.schema.json
var normalizedSchema string

//go:embed service_response_stored.schema.json
var storedSchema string

// Shape identifies which of the two known service response layouts a
// document claims to be.
type Shape string

// The two response layouts the extraction service is known to emit.
const (
	ShapeNormalized Shape = "normalized"
	ShapeStored     Shape = "stored"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Shape  Shape
	Errors []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("service response failed %s schema validation:\n", ve.Shape))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaError represents a failure loading or evaluating the schema itself.
type SchemaError struct {
	Shape Shape
	Cause error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to evaluate %s schema: %v", e.Shape, e.Cause)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// ValidateServiceResponse validates a raw service response document against
// the embedded schema for the given shape.
func ValidateServiceResponse(doc []byte, shape Shape) error {
	schema := normalizedSchema
	if shape == ShapeStored {
		schema = storedSchema
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return &SchemaError{Shape: shape, Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Shape: shape}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}

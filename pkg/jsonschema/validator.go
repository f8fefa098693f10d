package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates JSON documents against a schema compiled once at
// construction. It is safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles a JSON schema.
func NewValidator(schemaStr string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate checks a JSON document against the schema. It returns nil when
// the document is valid, a ValidationErrors collecting every violation when
// it is not, or a plain error when the document is not valid JSON.
func (v *Validator) Validate(doc []byte) error {
	var data interface{}
	if err := json.Unmarshal(doc, &data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := v.schema.Validate(data); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return extractValidationErrors(validationErr)
		}
		return err
	}

	return nil
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []error

// Error implements the error interface for ValidationErrors.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// extractValidationErrors flattens a jsonschema.ValidationError tree into a
// list of per-location errors.
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors

	if err.Message != "" {
		errors = append(errors, fmt.Errorf("validation error at %s: %s", err.InstanceLocation, err.Message))
	}

	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	return errors
}

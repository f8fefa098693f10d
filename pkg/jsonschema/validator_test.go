package jsonschema

import (
	"errors"
	"strings"
	"testing"
)

const personSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer", "minimum": 0}
  },
  "required": ["name"],
  "additionalProperties": false
}`

func TestNewValidator_InvalidSchema(t *testing.T) {
	if _, err := NewValidator(`{"type": 42}`); err == nil {
		t.Error("NewValidator() with invalid schema succeeded, want error")
	}
	if _, err := NewValidator(`not json`); err == nil {
		t.Error("NewValidator() with non-JSON schema succeeded, want error")
	}
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator(personSchema)
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	if err := v.Validate([]byte(`{"name": "ada", "age": 36}`)); err != nil {
		t.Errorf("Validate() of valid document error = %v", err)
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"missing required field", `{"age": 36}`},
		{"wrong type", `{"name": 42}`},
		{"below minimum", `{"name": "ada", "age": -1}`},
		{"unknown field", `{"name": "ada", "height": 170}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]byte(tt.doc))
			if err == nil {
				t.Fatal("Validate() of invalid document = nil, want error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
			}
			if len(verrs) == 0 {
				t.Error("ValidationErrors is empty, want at least one entry")
			}
			if !strings.Contains(verrs.Error(), "validation error at") {
				t.Errorf("Error() = %q, want per-location messages", verrs.Error())
			}
		})
	}
}

func TestValidator_InvalidJSON(t *testing.T) {
	v, err := NewValidator(personSchema)
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	if err := v.Validate([]byte(`{`)); err == nil {
		t.Error("Validate() of malformed JSON succeeded, want error")
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/distkit/distkit/pkg/jsonschema"
)

// recorderSchema is the JSON schema every recorder configuration document
// must satisfy, regardless of the source format.
const recorderSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "backend": {
      "type": "string",
      "enum": ["tdigest", "ddsketch", "hdr"]
    },
    "compression": {
      "type": "number",
      "minimum": 1
    },
    "relativeAccuracy": {
      "type": "number",
      "exclusiveMinimum": 0,
      "exclusiveMaximum": 1
    },
    "hdr": {
      "type": "object",
      "properties": {
        "min": {"type": "integer", "minimum": 1},
        "max": {"type": "integer", "minimum": 2},
        "sigFigs": {"type": "integer", "minimum": 1, "maximum": 5}
      },
      "additionalProperties": false
    },
    "flushInterval": {
      "type": "string"
    }
  },
  "additionalProperties": false
}`

// ValidateSchema checks a raw configuration document against the embedded
// JSON schema. YAML documents are converted to JSON first, so both formats
// are held to the same schema, including the rejection of unknown fields.
func ValidateSchema(data []byte, path string) error {
	doc := data

	if strings.ToLower(filepath.Ext(path)) != ".json" {
		var v interface{}
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
		converted, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to normalize config: %w", err)
		}
		doc = converted
	}

	validator, err := jsonschema.NewValidator(recorderSchema)
	if err != nil {
		return fmt.Errorf("failed to compile recorder schema: %w", err)
	}

	if err := validator.Validate(doc); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

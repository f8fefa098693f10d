package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the configuration field by field.
//
// Returns nil if valid, or a ValidationErrors containing all problems found.
func (c *RecorderConfig) Validate() error {
	errs := &ValidationErrors{}

	switch c.Backend {
	case "", BackendTDigest, BackendDDSketch, BackendHDR:
	default:
		errs.Add("backend", fmt.Sprintf("unknown backend '%s' (expected tdigest, ddsketch or hdr)", c.Backend))
	}

	if c.Compression != 0 && c.Compression < 1 {
		errs.Add("compression", "must be at least 1")
	}
	if c.Compression != 0 && c.effectiveBackend() != BackendTDigest {
		errs.Add("compression", fmt.Sprintf("only applies to the tdigest backend, not '%s'", c.effectiveBackend()))
	}

	if c.RelativeAccuracy != 0 && (c.RelativeAccuracy <= 0 || c.RelativeAccuracy >= 1) {
		errs.Add("relativeAccuracy", "must be between 0 and 1 exclusive")
	}
	if c.RelativeAccuracy != 0 && c.effectiveBackend() != BackendDDSketch {
		errs.Add("relativeAccuracy", fmt.Sprintf("only applies to the ddsketch backend, not '%s'", c.effectiveBackend()))
	}

	if c.HDR != nil {
		if c.effectiveBackend() != BackendHDR {
			errs.Add("hdr", fmt.Sprintf("only applies to the hdr backend, not '%s'", c.effectiveBackend()))
		}
		validateHDR(c.HDR, errs)
	}

	if c.FlushInterval < 0 {
		errs.Add("flushInterval", "must be positive")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// effectiveBackend resolves the empty default to tdigest.
func (c *RecorderConfig) effectiveBackend() string {
	if c.Backend == "" {
		return BackendTDigest
	}
	return c.Backend
}

func validateHDR(h *HDRConfig, errs *ValidationErrors) {
	if h.Min < 0 {
		errs.Add("hdr.min", "must be at least 1")
	}
	if h.Max != 0 && h.Max <= h.Min {
		errs.Add("hdr.max", "must be greater than hdr.min")
	}
	if h.SigFigs != 0 && (h.SigFigs < 1 || h.SigFigs > 5) {
		errs.Add("hdr.sigFigs", "must be between 1 and 5")
	}
}

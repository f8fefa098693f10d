package config

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name string
		cfg  RecorderConfig
	}{
		{"empty defaults", RecorderConfig{}},
		{"tdigest", RecorderConfig{Backend: BackendTDigest, Compression: 100}},
		{"ddsketch", RecorderConfig{Backend: BackendDDSketch, RelativeAccuracy: 0.02}},
		{"hdr", RecorderConfig{Backend: BackendHDR, HDR: &HDRConfig{Min: 1, Max: 1000, SigFigs: 3}}},
		{"compression with implicit backend", RecorderConfig{Compression: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		cfg       RecorderConfig
		wantField string
	}{
		{
			"unknown backend",
			RecorderConfig{Backend: "histogram"},
			"backend",
		},
		{
			"compression below one",
			RecorderConfig{Compression: 0.5},
			"compression",
		},
		{
			"compression on wrong backend",
			RecorderConfig{Backend: BackendHDR, Compression: 100},
			"compression",
		},
		{
			"relative accuracy on wrong backend",
			RecorderConfig{Backend: BackendTDigest, RelativeAccuracy: 0.01},
			"relativeAccuracy",
		},
		{
			"hdr on wrong backend",
			RecorderConfig{Backend: BackendTDigest, HDR: &HDRConfig{Min: 1}},
			"hdr",
		},
		{
			"hdr max below min",
			RecorderConfig{Backend: BackendHDR, HDR: &HDRConfig{Min: 100, Max: 50}},
			"hdr.max",
		},
		{
			"hdr sigfigs out of range",
			RecorderConfig{Backend: BackendHDR, HDR: &HDRConfig{SigFigs: 9}},
			"hdr.sigFigs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error on field %q", tt.wantField)
			}

			verrs, ok := err.(*ValidationErrors)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *ValidationErrors", err)
			}

			found := false
			for _, ve := range verrs.Errors {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %v, want one on field %q", err, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Message(t *testing.T) {
	errs := &ValidationErrors{}
	if errs.HasErrors() {
		t.Error("HasErrors() on empty collection = true, want false")
	}

	errs.Add("backend", "unknown backend")
	if got := errs.Error(); !strings.Contains(got, "backend") {
		t.Errorf("Error() = %q, want it to mention the field", got)
	}

	errs.Add("compression", "must be at least 1")
	got := errs.Error()
	if !strings.Contains(got, "2 validation errors") {
		t.Errorf("Error() = %q, want a count prefix for multiple errors", got)
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/distkit/distkit/sketch"
)

// Sketch backend names accepted in RecorderConfig.Backend.
const (
	BackendTDigest  = "tdigest"
	BackendDDSketch = "ddsketch"
	BackendHDR      = "hdr"
)

// RecorderConfig configures a distribution recorder.
type RecorderConfig struct {
	// Backend selects the sketch implementation: tdigest (default),
	// ddsketch, or hdr.
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`

	// Compression is the t-digest compression level (tdigest backend only).
	// Zero means sketch.DefaultCompression.
	Compression float64 `json:"compression,omitempty" yaml:"compression,omitempty"`

	// RelativeAccuracy is the quantile accuracy guarantee (ddsketch backend
	// only). Zero means sketch.DefaultRelativeAccuracy.
	RelativeAccuracy float64 `json:"relativeAccuracy,omitempty" yaml:"relativeAccuracy,omitempty"`

	// HDR configures the histogram range (hdr backend only).
	HDR *HDRConfig `json:"hdr,omitempty" yaml:"hdr,omitempty"`

	// FlushInterval is how often a flusher extracts the accumulated sketch.
	FlushInterval Duration `json:"flushInterval,omitempty" yaml:"flushInterval,omitempty"`
}

// HDRConfig configures the HDR histogram backend.
type HDRConfig struct {
	// Min is the lowest trackable value (default: 1)
	Min int64 `json:"min,omitempty" yaml:"min,omitempty"`

	// Max is the highest trackable value (default: 3600000000)
	Max int64 `json:"max,omitempty" yaml:"max,omitempty"`

	// SigFigs is the number of significant figures, 1 to 5 (default: 3)
	SigFigs int `json:"sigFigs,omitempty" yaml:"sigFigs,omitempty"`
}

// LoadConfig loads a recorder configuration from a file.
//
// The file format is determined by extension (.yaml/.yml or .json). The
// parsed configuration is validated against the embedded JSON schema and
// then field by field.
func LoadConfig(path string) (*RecorderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ValidateSchema(data, path); err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseConfig parses configuration data without validating it.
//
// The format is determined by the file extension in path; unknown or empty
// extensions default to YAML.
func ParseConfig(data []byte, path string) (*RecorderConfig, error) {
	var cfg RecorderConfig

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return &cfg, nil
}

// SketchFactory returns a factory for the configured backend, or an error
// if the backend name is unknown.
func (c *RecorderConfig) SketchFactory() (sketch.Factory, error) {
	switch c.Backend {
	case "", BackendTDigest:
		compression := c.Compression
		if compression == 0 {
			compression = sketch.DefaultCompression
		}
		return func() (sketch.Sketch, error) {
			return sketch.NewTDigestWithCompression(compression), nil
		}, nil

	case BackendDDSketch:
		accuracy := c.RelativeAccuracy
		if accuracy == 0 {
			accuracy = sketch.DefaultRelativeAccuracy
		}
		return func() (sketch.Sketch, error) {
			return sketch.NewDDSketch(accuracy)
		}, nil

	case BackendHDR:
		min, max := sketch.DefaultHDRMin, sketch.DefaultHDRMax
		sigfigs := sketch.DefaultHDRSigFigs
		if c.HDR != nil {
			if c.HDR.Min != 0 {
				min = c.HDR.Min
			}
			if c.HDR.Max != 0 {
				max = c.HDR.Max
			}
			if c.HDR.SigFigs != 0 {
				sigfigs = c.HDR.SigFigs
			}
		}
		return func() (sketch.Sketch, error) {
			return sketch.NewHDR(min, max, sigfigs), nil
		}, nil

	default:
		return nil, fmt.Errorf("unknown sketch backend: %q", c.Backend)
	}
}

// Duration wraps time.Duration with string-based JSON and YAML encoding
// ("30s", "2m", "1h30m").
type Duration time.Duration

// GetDuration returns the duration or a default if unset.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

package distribution

import (
	"testing"
	"time"

	"github.com/distkit/distkit/config"
	"github.com/distkit/distkit/sketch"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RecorderConfig
	}{
		{"default", config.RecorderConfig{}},
		{"tdigest", config.RecorderConfig{Backend: config.BackendTDigest, Compression: 200}},
		{"ddsketch", config.RecorderConfig{Backend: config.BackendDDSketch}},
		{"hdr", config.RecorderConfig{Backend: config.BackendHDR}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewFromConfig(&tt.cfg)
			if err != nil {
				t.Fatalf("NewFromConfig() error = %v", err)
			}

			rec.Record(1.0)
			rec.Record(2.0)

			s, err := rec.ExtractAndReset()
			if err != nil {
				t.Fatalf("ExtractAndReset() error = %v", err)
			}
			if got := s.Count(); got != 2 {
				t.Errorf("Extracted sketch Count() = %d, want 2", got)
			}
		})
	}
}

func TestNewFromConfig_UnknownBackend(t *testing.T) {
	cfg := config.RecorderConfig{Backend: "histogram"}
	if _, err := NewFromConfig(&cfg); err == nil {
		t.Error("NewFromConfig() with unknown backend succeeded, want error")
	}
}

func TestNewFlusherFromConfig(t *testing.T) {
	rec, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := config.RecorderConfig{FlushInterval: config.Duration(time.Minute)}
	f := NewFlusherFromConfig(&cfg, rec, func(sketch.Sketch) {})
	defer f.Stop()

	if f.interval != time.Minute {
		t.Errorf("interval = %v, want 1m", f.interval)
	}
}

func TestNewFlusherFromConfig_DefaultInterval(t *testing.T) {
	rec, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	f := NewFlusherFromConfig(&config.RecorderConfig{}, rec, func(sketch.Sketch) {})
	defer f.Stop()

	if f.interval != DefaultFlushInterval {
		t.Errorf("interval = %v, want %v", f.interval, DefaultFlushInterval)
	}
}

package distribution

import (
	"fmt"

	"github.com/distkit/distkit/config"
)

// NewFromConfig creates a Recorder using the sketch backend selected by the
// configuration.
func NewFromConfig(cfg *config.RecorderConfig) (*Recorder, error) {
	factory, err := cfg.SketchFactory()
	if err != nil {
		return nil, fmt.Errorf("invalid recorder config: %w", err)
	}
	return New(WithFactory(factory))
}

// NewFlusherFromConfig creates and starts a Flusher for the recorder using
// the configured flush interval, falling back to DefaultFlushInterval when
// none is set.
func NewFlusherFromConfig(cfg *config.RecorderConfig, r *Recorder, sink Sink, options ...FlusherOption) *Flusher {
	return NewFlusher(r, cfg.FlushInterval.GetDuration(DefaultFlushInterval), sink, options...)
}

package distribution

import (
	"context"
	"sync"
	"time"

	"github.com/distkit/distkit/sketch"
)

// DefaultFlushInterval is used when a Flusher is created with a
// non-positive interval.
const DefaultFlushInterval = 10 * time.Second

// Sink receives an extracted sketch. The sketch is owned exclusively by the
// sink once delivered; a typical sink serializes it and forwards the bytes
// to a reporting pipeline. Sinks are invoked from the flusher's goroutine,
// one at a time.
type Sink func(s sketch.Sketch)

// ErrorHandler receives extraction failures. The failed window is lost; the
// recorder itself remains usable.
type ErrorHandler func(err error)

// FlusherOption is a function that configures a Flusher.
type FlusherOption func(*Flusher)

// WithErrorHandler sets the handler invoked when an extraction fails.
// Without one, failed windows are dropped silently.
func WithErrorHandler(h ErrorHandler) FlusherOption {
	return func(f *Flusher) {
		f.onError = h
	}
}

// Flusher periodically extracts a recorder's accumulated sketch and hands it
// to a sink. It runs in its own goroutine from creation until Stop.
type Flusher struct {
	recorder *Recorder
	interval time.Duration
	sink     Sink
	onError  ErrorHandler

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFlusher creates a Flusher and starts its background loop. Every
// interval it calls ExtractAndReset on the recorder and passes the result
// to sink, including for windows with no samples.
func NewFlusher(r *Recorder, interval time.Duration, sink Sink, options ...FlusherOption) *Flusher {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	f := &Flusher{
		recorder: r,
		interval: interval,
		sink:     sink,
		cancel:   cancel,
	}

	for _, option := range options {
		option(f)
	}

	f.wg.Add(1)
	go f.run(ctx)

	return f
}

// run drives the periodic extraction loop until the context is cancelled.
func (f *Flusher) run(ctx context.Context) {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.flush()
		}
	}
}

// flush extracts the current window and delivers it to the sink.
func (f *Flusher) flush() {
	s, err := f.recorder.ExtractAndReset()
	if err != nil {
		if f.onError != nil {
			f.onError(err)
		}
		return
	}
	f.sink(s)
}

// Stop stops the background loop, waits for it to finish, and performs one
// final extraction so the tail window is not lost. The recorder remains
// usable after Stop.
func (f *Flusher) Stop() {
	f.cancel()
	f.wg.Wait()

	f.flush()
}

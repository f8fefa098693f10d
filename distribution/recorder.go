package distribution

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/distkit/distkit/sketch"
)

// Recorder accumulates measurements into a live sketch that can be atomically
// extracted and replaced with a fresh one. It is safe for concurrent use by
// any number of goroutines.
//
// The live sketch is held behind an atomic reference. Record and the
// capture+install step of ExtractAndReset are mutually exclusive, so a
// measurement lands in exactly one extraction window; Count reads the
// reference without locking and may observe a slightly stale sketch.
type Recorder struct {
	newSketch sketch.Factory

	// mu serializes all mutation of the live sketch: Record, and the swap
	// inside ExtractAndReset. Sketch implementations are not internally
	// synchronized.
	mu   sync.Mutex
	live atomic.Pointer[sketch.Sketch]
}

// Option is a function that configures a Recorder.
type Option func(*Recorder)

// WithFactory sets the factory used to create the live sketch at
// construction and its replacement at each extraction.
func WithFactory(f sketch.Factory) Option {
	return func(r *Recorder) {
		r.newSketch = f
	}
}

// WithCompression configures the recorder to use t-digest sketches with the
// given compression level instead of the default level.
func WithCompression(compression float64) Option {
	return func(r *Recorder) {
		r.newSketch = func() (sketch.Sketch, error) {
			return sketch.NewTDigestWithCompression(compression), nil
		}
	}
}

// New creates a Recorder with an empty live sketch.
//
// By default the recorder uses t-digest sketches at
// sketch.DefaultCompression:
//
//	rec, err := distribution.New()
//
//	rec, err := distribution.New(distribution.WithCompression(200))
//
//	rec, err := distribution.New(distribution.WithFactory(func() (sketch.Sketch, error) {
//	    return sketch.NewDDSketch(0.01)
//	}))
func New(options ...Option) (*Recorder, error) {
	r := &Recorder{
		newSketch: func() (sketch.Sketch, error) {
			return sketch.NewTDigest(), nil
		},
	}

	for _, option := range options {
		option(r)
	}

	s, err := r.newSketch()
	if err != nil {
		return nil, fmt.Errorf("failed to create initial sketch: %w", err)
	}
	r.live.Store(&s)

	return r, nil
}

// Record adds a measurement to the live sketch. It is safe to call from any
// number of goroutines, including concurrently with ExtractAndReset.
//
// Non-finite values (NaN, ±Inf) are dropped silently; they count towards no
// extraction window.
func (r *Recorder) Record(value float64) {
	r.mu.Lock()
	_ = (*r.live.Load()).Add(value)
	r.mu.Unlock()
}

// ExtractAndReset atomically captures the live sketch, installs a fresh
// empty one, and returns the captured sketch with full ownership: the
// recorder retains no reference to it afterwards.
//
// Every Record call that completes before ExtractAndReset returns is
// reflected in the returned sketch or a later one; Record calls racing with
// the swap land in exactly one side of it.
//
// The replacement sketch is created before the swap, so a factory error
// leaves the recorder untouched and fully usable.
func (r *Recorder) ExtractAndReset() (sketch.Sketch, error) {
	fresh, err := r.newSketch()
	if err != nil {
		return nil, fmt.Errorf("failed to create replacement sketch: %w", err)
	}

	r.mu.Lock()
	captured := r.live.Swap(&fresh)
	r.mu.Unlock()

	return *captured, nil
}

// Count returns the number of samples in the live sketch. Under concurrent
// writers the result is a count of some consistent prefix of completed
// Record calls; it is intended for monitoring, not attribution.
func (r *Recorder) Count() int64 {
	return (*r.live.Load()).Count()
}

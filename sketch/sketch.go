package sketch

import (
	"errors"
	"math"
)

// ErrNonFinite is returned by Add when the value is NaN or infinite.
// The sketch is left unchanged.
var ErrNonFinite = errors.New("sketch: non-finite value")

// Sketch is a compact, mergeable summary of a stream of real-valued samples.
//
// Implementations are not safe for concurrent mutation. Callers that share a
// Sketch across goroutines must serialize Add and Merge externally; Count is
// always safe to call concurrently with a single mutator.
type Sketch interface {
	// Add records a single sample. It returns ErrNonFinite for NaN or
	// infinite values, leaving the sketch unchanged.
	Add(value float64) error

	// Count returns the number of samples recorded so far.
	Count() int64

	// Quantile returns an estimate of the q-th quantile of the recorded
	// samples, with q in [0, 1]. The result is NaN when the sketch is empty.
	Quantile(q float64) float64

	// Merge folds another sketch of the same concrete type into this one.
	// Merging sketches of different types is an error.
	Merge(other Sketch) error

	// Serialize returns a compact encoding of the sketch suitable for
	// shipping to an aggregator. Serializing an untouched sketch twice
	// yields identical bytes.
	Serialize() ([]byte, error)
}

// Factory creates a new empty Sketch. A Recorder calls its Factory once at
// construction and once per extraction to install a fresh sketch.
type Factory func() (Sketch, error)

// isFinite reports whether v is an ordinary float64 (not NaN, not ±Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package sketch

import (
	"encoding/json"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Default HDR histogram range: 1 microsecond to 1 hour in microseconds,
// with 3 significant figures.
const (
	DefaultHDRMin     int64 = 1
	DefaultHDRMax     int64 = 3600000000
	DefaultHDRSigFigs       = 3
)

// HDR is a Sketch backed by an HDR histogram over a fixed integer range.
// It suits measurements with known bounds, such as latencies in
// microseconds. Samples are rounded to the nearest integer and clamped to
// the configured range before recording.
type HDR struct {
	h        *hdrhistogram.Histogram
	min, max int64
	count    atomic.Int64
}

// NewHDR creates an empty HDR sketch recording values in [min, max] with
// the given number of significant figures (1 to 5).
func NewHDR(min, max int64, sigfigs int) *HDR {
	if min < 1 {
		min = DefaultHDRMin
	}
	if max <= min {
		max = DefaultHDRMax
	}
	if sigfigs < 1 || sigfigs > 5 {
		sigfigs = DefaultHDRSigFigs
	}
	return &HDR{
		h:   hdrhistogram.New(min, max, sigfigs),
		min: min,
		max: max,
	}
}

// Add records a single sample, rounding it to the nearest integer and
// clamping it to the histogram's range.
func (s *HDR) Add(value float64) error {
	if !isFinite(value) {
		return ErrNonFinite
	}
	v := int64(math.Round(value))
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if err := s.h.RecordValue(v); err != nil {
		return fmt.Errorf("sketch: failed to record sample: %w", err)
	}
	s.count.Add(1)
	return nil
}

// Count returns the number of samples recorded so far.
func (s *HDR) Count() int64 {
	return s.count.Load()
}

// Quantile returns an estimate of the q-th quantile, q in [0, 1].
// It returns NaN when the sketch is empty.
func (s *HDR) Quantile(q float64) float64 {
	if s.count.Load() == 0 {
		return math.NaN()
	}
	return float64(s.h.ValueAtQuantile(q * 100))
}

// Merge folds another HDR sketch into this one. Samples outside this
// sketch's range are dropped by the underlying histogram merge.
func (s *HDR) Merge(other Sketch) error {
	o, ok := other.(*HDR)
	if !ok {
		return fmt.Errorf("sketch: cannot merge %T into *HDR", other)
	}
	s.h.Merge(o.h)
	s.count.Add(o.Count())
	return nil
}

// Serialize returns the exported histogram snapshot encoded as JSON. The
// snapshot carries the range, precision and per-bucket counts, so it can be
// re-imported and merged elsewhere.
func (s *HDR) Serialize() ([]byte, error) {
	data, err := json.Marshal(s.h.Export())
	if err != nil {
		return nil, fmt.Errorf("sketch: failed to serialize snapshot: %w", err)
	}
	return data, nil
}

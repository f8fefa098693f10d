package sketch

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/DataDog/sketches-go/ddsketch"
)

// DefaultRelativeAccuracy is the default relative accuracy for DDSketch.
//
// With a relative accuracy of 0.01, a true p50 of 100 is reported between
// 99 and 101.
const DefaultRelativeAccuracy = 0.01

// DDSketch is a Sketch backed by DataDog's DDSketch, which guarantees a
// fixed relative error on quantile estimates regardless of the input
// distribution.
type DDSketch struct {
	sk    *ddsketch.DDSketch
	count atomic.Int64
}

// NewDDSketch creates an empty DDSketch with the given relative accuracy.
// Values outside (0, 1) are replaced with DefaultRelativeAccuracy.
func NewDDSketch(relativeAccuracy float64) (*DDSketch, error) {
	if relativeAccuracy <= 0 || relativeAccuracy >= 1 {
		relativeAccuracy = DefaultRelativeAccuracy
	}
	sk, err := ddsketch.NewDefaultDDSketch(relativeAccuracy)
	if err != nil {
		return nil, fmt.Errorf("sketch: failed to create DDSketch: %w", err)
	}
	return &DDSketch{sk: sk}, nil
}

// Add records a single sample.
func (d *DDSketch) Add(value float64) error {
	if !isFinite(value) {
		return ErrNonFinite
	}
	if err := d.sk.Add(value); err != nil {
		return fmt.Errorf("sketch: failed to add sample: %w", err)
	}
	d.count.Add(1)
	return nil
}

// Count returns the number of samples recorded so far.
func (d *DDSketch) Count() int64 {
	return d.count.Load()
}

// Quantile returns an estimate of the q-th quantile, q in [0, 1].
// It returns NaN when the sketch is empty or q is out of range.
func (d *DDSketch) Quantile(q float64) float64 {
	v, err := d.sk.GetValueAtQuantile(q)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Merge folds another DDSketch into this one.
func (d *DDSketch) Merge(other Sketch) error {
	o, ok := other.(*DDSketch)
	if !ok {
		return fmt.Errorf("sketch: cannot merge %T into *DDSketch", other)
	}
	if err := d.sk.MergeWith(o.sk); err != nil {
		return fmt.Errorf("sketch: failed to merge: %w", err)
	}
	d.count.Add(o.Count())
	return nil
}

// Serialize returns the sketch's protobuf encoding, including the index
// mapping so the bytes are self-describing.
func (d *DDSketch) Serialize() ([]byte, error) {
	var b []byte
	d.sk.Encode(&b, false)
	return b, nil
}

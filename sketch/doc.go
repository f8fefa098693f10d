// Package sketch provides compact, mergeable summaries of real-valued sample
// streams with support for approximate quantile queries.
//
// A Sketch compacts an unbounded stream of measurements into a bounded data
// structure that retains enough information to reconstruct percentiles with
// good accuracy, even for long-tail distributions. Sketches are mergeable:
// two sketches built from disjoint streams can be combined into one that is
// statistically equivalent to a sketch built from the concatenated stream.
//
// # Implementations
//
//   - TDigest: t-digest clustering with a tunable compression level.
//     The default backend; good tail-percentile accuracy at compression 100.
//   - DDSketch: relative-accuracy guarantees (a value at p99 of 100 with
//     relative accuracy 0.01 is reported between 99 and 101).
//   - HDR: HDR histogram over a fixed integer range, for measurements with
//     known bounds such as latencies in microseconds.
//
// # Basic Usage
//
//	s := sketch.NewTDigest()
//	s.Add(12.5)
//	s.Add(99.2)
//
//	fmt.Printf("count: %d\n", s.Count())
//	fmt.Printf("p99: %.2f\n", s.Quantile(0.99))
//
//	data, err := s.Serialize()
//	// ship data to an aggregator, merge it there with other sketches
//
// # Non-Finite Values
//
// Every implementation rejects NaN and infinite inputs: Add returns
// ErrNonFinite and the sketch is left unchanged.
package sketch

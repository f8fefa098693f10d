// Package distribution provides a threadsafe recorder for continuous numeric
// measurements such as request latencies or payload sizes.
//
// A Recorder accepts a high rate of concurrent writes and periodically yields
// a compact, serializable, mergeable sketch of everything recorded since the
// last extraction, atomically resetting itself in the process. Every recorded
// value is attributed to exactly one extraction window: never lost, never
// double-counted, and readers never observe a partially-updated recorder.
//
// # Basic Usage
//
//	rec, err := distribution.New()
//	if err != nil {
//	    return err
//	}
//
//	// Record measurements from any number of goroutines
//	rec.Record(12.5)
//	rec.Record(99.2)
//
//	// Periodically extract everything recorded so far
//	s, err := rec.ExtractAndReset()
//	if err != nil {
//	    return err
//	}
//	data, _ := s.Serialize()
//	// ship data; the recorder is already accumulating the next window
//
// # Periodic Extraction
//
// Flusher drives the extract-and-hand-off cycle on a fixed interval:
//
//	f := distribution.NewFlusher(rec, 10*time.Second, func(s sketch.Sketch) {
//	    data, _ := s.Serialize()
//	    publish(data)
//	})
//	defer f.Stop()
//
// # Thread Safety
//
// Record and ExtractAndReset contend on one mutex per recorder, which makes
// the sketch swap indivisible with respect to any single Record call. Count
// reads the live sketch through an atomic reference without locking.
package distribution

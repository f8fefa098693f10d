// Package config provides configuration parsing and validation for
// distribution recorders.
//
// A RecorderConfig selects the sketch backend and its accuracy knobs, plus
// the flush interval for periodic extraction.
//
// Example YAML:
//
//	backend: tdigest
//	compression: 100
//	flushInterval: 10s
//
//	backend: hdr
//	hdr:
//	  min: 1
//	  max: 3600000000
//	  sigFigs: 3
//	flushInterval: 30s
//
// Files are parsed by extension (.yaml/.yml or .json), validated against an
// embedded JSON schema, then checked field by field. LoadConfig performs all
// three steps:
//
//	cfg, err := config.LoadConfig("recorder.yaml")
//	if err != nil {
//	    return err
//	}
//	factory, err := cfg.SketchFactory()
package config

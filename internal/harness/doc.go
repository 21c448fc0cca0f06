// Package harness runs conformance scenarios for the parameter file format.
//
// A scenario is a YAML file that describes a sequence of parameter files,
// the defaults a configuration pass resolves afterwards, and assertions on
// the resulting store:
//
//	name: merge_override
//	description: later files override earlier keys
//	files:
//	  - name: first.txt
//	    content: |
//	      x = 1
//	  - name: second.txt
//	    content: |
//	      X = 2
//	defaults:
//	  - key: generations
//	    value: "100"
//	assertions:
//	  - type: value
//	    key: x
//	    value: "2"
//	  - type: count
//	    count: 2
//
// Files are written to a scratch directory and loaded in order with
// param.Store.LoadFile, so scenarios go through the same path as real
// configuration. Run executes a scenario; AssertGolden additionally pins
// the rendered store against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness

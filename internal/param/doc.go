// Package param provides a case-insensitive key/value parameter store.
//
// Parameters are opaque text values keyed by lowercase names. A store is
// usually populated from one or more parameter files and then queried by
// feature code with ResolveOrDefault, which falls back to a caller-supplied
// constant when the key was never configured.
//
// # File Format
//
// Parameter files are line oriented:
//   - '#' starts a comment that runs to the end of the line, anywhere on the line
//   - blank lines (after comment stripping) are ignored
//   - every other line must have the form "key = value" with exactly one '='
//   - keys and values are trimmed; keys are lowercased, values kept verbatim
//   - a line whose key or value is empty after trimming ("= 5", "d =") is malformed
//   - lines that do not fit this shape are skipped silently
//
// Loading merges into the existing store. A later file overrides keys of the
// same normalized name and leaves every other key in place.
//
// # Default-Fill
//
// ResolveOrDefault is NOT a pure read. On a miss it stores the default under
// the key before returning it, so:
//   - later reads of the same key return the first default, whatever default they pass
//   - Keys and Pairs enumerate every parameter used during a configuration pass
//
// Callers that need a side-effect free read use Lookup. Callers that want to
// observe default-fills (for logging) register WithDefaultObserver.
//
// All Store methods are safe for concurrent use.
package param

// Package document provides the format-independent value tree the build
// matrix is decoded into.
//
// Values are one of:
//   - nil, bool, string
//   - a number (json.Number for JSON and HCL input, int or float64 for YAML)
//   - []any
//   - *Object, an insertion-ordered string-keyed map
//
// Object keeps keys in first-seen order, so a decoded document can be
// re-encoded with its original key order. Decoders exist for JSON, YAML
// and HCL; encoders for JSON and YAML.
package document

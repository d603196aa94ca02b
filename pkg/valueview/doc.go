// Package valueview converts records into a generic tree of dynamically-typed
// values keyed by field name.
//
// The tree is a map[string]any whose leaves are string, int64, float64, bool or
// nil, with nested []any and map[string]any for composite values. A key holding
// nil is present but null; a missing key is absent. Validators consume only
// this contract and never the concrete record type.
//
// # Sources
//
//   - Of        – any Go value; maps and url.Values pass through, everything
//     else is encoded with encoding/json and decoded back with UseNumber
//   - FromJSON  – a JSON document
//   - FromYAML  – a YAML document (gopkg.in/yaml.v3)
//   - FromBSON  – a BSON document (go.mongodb.org/mongo-driver/v2/bson)
//   - FromValues – form or query values; one value becomes a string, several
//     become a []any of strings, none becomes nil
//   - FromRequest – an *http.Request, dispatched on its Content-Type, with chi
//     route parameters laid over the body fields
//
// Form and query values are always strings; no schema inference is attempted.
//
// # Error Handling
//
// Every source returns ErrNotObject (possibly joined with a decoder error) when
// the input is not object-shaped, and a source-specific sentinel such as
// ErrInvalidJSON when the input cannot be decoded at all.
package valueview

package valueview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// Of views any Go value as a tree. map[string]any and url.Values are
// normalized directly, json.RawMessage is decoded, and anything else is
// round-tripped through encoding/json so struct tags apply.
func Of(v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrNotObject
	case map[string]any:
		return normalizeMap(t), nil
	case url.Values:
		return FromValues(t), nil
	case json.RawMessage:
		return FromJSON(t)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrNotObject, err)
	}
	return FromJSON(raw)
}

// FromJSON decodes a single JSON object. Trailing data after the object is an error.
func FromJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return asObject(doc)
}

// FromYAML decodes a single YAML document whose root is a mapping.
func FromYAML(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}
	return asObject(doc)
}

// FromBSON decodes a BSON document. Embedded documents and arrays are
// converted to maps and slices, ObjectIDs to hex strings and datetimes to
// RFC 3339 strings.
func FromBSON(data []byte) (map[string]any, error) {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidBSON, err)
	}
	return asObject(doc)
}

// FromValues views form or query values.
func FromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			out[key] = nil
		case 1:
			out[key] = vals[0]
		default:
			list := make([]any, len(vals))
			for i, s := range vals {
				list[i] = s
			}
			out[key] = list
		}
	}
	return out
}

func asObject(doc any) (map[string]any, error) {
	m, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, doc)
	}
	return m, nil
}

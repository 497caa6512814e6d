package apigateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is an untyped object as received from the remote API, before normalization.
// Numbers are kept as json.Number.
type RawRecord map[string]any

// DecodeCollection unwraps a collection response. Both a bare array and an
// envelope object exposing the array under "data" are accepted; any other
// shape yields an empty, non-nil slice.
func DecodeCollection(raw json.RawMessage) ([]RawRecord, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case []any:
		return toRecords(t), nil
	case map[string]any:
		if data, ok := t["data"].([]any); ok {
			return toRecords(data), nil
		}
	}
	return []RawRecord{}, nil
}

// DecodeRecord unwraps a single-record response. An array response yields its
// first element. An empty body or JSON null yields (nil, nil).
func DecodeRecord(raw json.RawMessage) (RawRecord, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case map[string]any:
		return RawRecord(t), nil
	case []any:
		records := toRecords(t)
		if len(records) == 0 {
			return nil, nil
		}
		return records[0], nil
	}
	return nil, nil
}

func decode(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return v, nil
}

func toRecords(in []any) []RawRecord {
	out := make([]RawRecord, 0, len(in))
	for _, el := range in {
		if m, ok := el.(map[string]any); ok {
			out = append(out, RawRecord(m))
		}
	}
	return out
}

// Lookup returns the value of the first key present with a non-null value.
func (r RawRecord) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the first key holding a string.
func (r RawRecord) String(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := r[k].(string); ok {
			return s, true
		}
	}
	return "", false
}

// Bool returns the first key holding a boolean.
func (r RawRecord) Bool(keys ...string) (bool, bool) {
	for _, k := range keys {
		if b, ok := r[k].(bool); ok {
			return b, true
		}
	}
	return false, false
}

// Int64 returns the first key holding an integer-like value. Numeric strings count.
func (r RawRecord) Int64(keys ...string) (int64, bool) {
	for _, k := range keys {
		if n, ok := toInt64(r[k]); ok {
			return n, true
		}
	}
	return 0, false
}

// Slice returns the first key holding an array.
func (r RawRecord) Slice(keys ...string) ([]any, bool) {
	for _, k := range keys {
		if s, ok := r[k].([]any); ok {
			return s, true
		}
	}
	return nil, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// FormatID renders an identifier for use in a request path.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

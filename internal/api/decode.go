package api

import (
	"bytes"
	"encoding/json"
)

// unwrapString returns the inner text when the body is itself a JSON string.
// Some endpoints double-encode their payload.
func unwrapString(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return trimmed
	}
	return []byte(inner)
}

// decodeField reads data[key] when data is an object carrying key, and data
// itself otherwise. ok is false when neither shape decodes.
func decodeField[T any](data []byte, key string) (T, bool) {
	var zero T
	data = unwrapString(data)
	if len(data) == 0 {
		return zero, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err == nil {
		if raw, ok := fields[key]; ok {
			var v T
			if err := json.Unmarshal(unwrapString(raw), &v); err != nil {
				return zero, false
			}
			return v, true
		}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false
	}
	return v, true
}

// decodeList is decodeField for lists; malformed payloads yield an empty list
func decodeList[T any](data []byte, key string) []T {
	items, ok := decodeField[[]T](data, key)
	if !ok || items == nil {
		return []T{}
	}
	return items
}

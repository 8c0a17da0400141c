package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToString converts a loosely typed scalar (as decoded from JSON) to its
// string form. Only strings, numbers and json.Number are accepted.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// ToInt64 converts a loosely typed scalar to an integer id.
// Floats are accepted only when they carry no fraction.
func ToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		i, err := v.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// ToStrings converts a JSON array of scalars to strings, skipping blanks.
func ToStrings(val any) ([]string, bool) {
	items, ok := val.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := ToString(item)
		if !ok {
			return nil, false
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, true
}

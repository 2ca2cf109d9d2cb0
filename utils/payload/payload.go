// Package payload decodes loosely typed JSON request bodies where every
// field is optional and a wrongly typed value must not fail the request.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidJSON is returned when the body is not a JSON object.
var ErrInvalidJSON = errors.New("invalid JSON")

// Field records whether a key was present in the payload and whether its
// value decoded as T.
type Field[T any] struct {
	Value T
	Set   bool // key present
	Valid bool // value decoded as T
	Null  bool // value was JSON null
}

// UnmarshalJSON never fails: a value of the wrong type leaves Valid false.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

// Get returns the value when present and well typed.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Set && f.Valid
}

// Decode unmarshals body into dst. The body must be a single JSON object.
func Decode(body []byte, dst interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrInvalidJSON
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

// Truthy applies the usual dynamic-language truthiness to a decoded JSON value.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	}
	return true
}

// ToInt coerces a decoded JSON value to an int. Numbers are truncated toward
// zero, strings must hold a base-10 integer, booleans map to 0 and 1.
func ToInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || t > math.MaxInt32 || t < math.MinInt32 {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// ID coerces a decoded JSON value to a positive row id.
func ID(v interface{}) (uint, bool) {
	n, ok := ToInt(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

package attrs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/modelkit/errors"
)

// Cast kind tags recognized in Policy.Casts. Tags are matched
// case-insensitively after trimming whitespace; "integer", "real",
// "double", "boolean" and "json" aliases are accepted too. Unrecognized
// tags leave values untouched.
const (
	CastInt    = "int"
	CastFloat  = "float"
	CastString = "string"
	CastBool   = "bool"
	CastObject = "object"
	CastArray  = "array"
	CastJSON   = "json"
)

// Cast applies key's configured cast to value. Keys without a cast, and
// nil values, pass through unchanged. JSON decode failures propagate.
func (m *Model) Cast(key string, value any) (any, error) {
	kind, ok := m.casts[key]
	if !ok {
		return value, nil
	}
	v, err := castValue(kind, value)
	if err != nil {
		return nil, errors.Wrapf(err, "cast attribute %q as %s", key, kind)
	}
	return v, nil
}

// castValue dispatches on the normalized cast kind. Casting is idempotent:
// feeding a result back through the same kind returns it unchanged.
func castValue(kind string, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "int", "integer":
		return toInt64(value), nil
	case "real", "float", "double":
		return toFloat64(value), nil
	case "string":
		return toString(value), nil
	case "bool", "boolean":
		return toBool(value), nil
	case "object":
		return decodeJSONObject(value)
	case "array", "json":
		return decodeJSON(value)
	default:
		// Lenient: unknown kinds are not an error
		return value, nil
	}
}

// isJSONCast reports whether kind serializes to JSON text on write.
func isJSONCast(kind string) bool {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "object", "array", "json":
		return true
	}
	return false
}

// serializeJSON produces the JSON text stored for array/json/object casts.
// String and []byte input is assumed pre-serialized and stored verbatim,
// which keeps writes idempotent and lets Replicate force-fill raw
// attributes without double encoding.
func serializeJSON(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n
		}
		// Loose coercion: "1.9" -> 1, non-numeric -> 0
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int64(f)
		}
		return 0
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

func toFloat64(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return 0
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}

func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		// Truthiness: empty, "0" and "false" are false
		s := strings.ToLower(strings.TrimSpace(v))
		return s != "" && s != "0" && s != "false"
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	default:
		return value != nil
	}
}

// decodeJSON parses JSON text into a generic mapping/sequence. Values
// that are not text are assumed already decoded and returned unchanged.
func decodeJSON(value any) (any, error) {
	data, ok := jsonText(value)
	if !ok {
		return value, nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeJSONObject parses JSON text into an object-shaped mapping. The
// decode error for non-object JSON propagates from encoding/json.
func decodeJSONObject(value any) (any, error) {
	data, ok := jsonText(value)
	if !ok {
		return value, nil
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonText(value any) ([]byte, bool) {
	switch v := value.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	default:
		return nil, false
	}
}

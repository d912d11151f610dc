package attrs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastInt(t *testing.T) {
	tests := []struct {
		in   any
		want int64
	}{
		{int64(7), 7},
		{42, 42},
		{3.9, 3},
		{"1", 1},
		{"1.9", 1},
		{"abc", 0},
		{true, 1},
		{false, 0},
		{json.Number("12"), 12},
	}
	for _, tt := range tests {
		got, err := castValue("int", tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "cast %v", tt.in)
	}
}

func TestCastFloat(t *testing.T) {
	for _, kind := range []string{"real", "float", "double"} {
		got, err := castValue(kind, "1.5")
		require.NoError(t, err)
		assert.Equal(t, 1.5, got)
	}

	got, err := castValue("float", 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestCastString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"already", "already"},
		{[]byte("bytes"), "bytes"},
		{42, "42"},
		{1.5, "1.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		got, err := castValue("string", tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestCastBool(t *testing.T) {
	truthy := []any{true, 1, -1, 0.5, "yes", "1", "true"}
	falsy := []any{false, 0, 0.0, "", "0", "false", "FALSE"}

	for _, v := range truthy {
		got, err := castValue("bool", v)
		require.NoError(t, err)
		assert.Equal(t, true, got, "%v should be truthy", v)
	}
	for _, v := range falsy {
		got, err := castValue("boolean", v)
		require.NoError(t, err)
		assert.Equal(t, false, got, "%v should be falsy", v)
	}
}

func TestCastJSONArray(t *testing.T) {
	got, err := castValue("array", `{"a":1,"b":[1,2]}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0, "b": []any{1.0, 2.0}}, got)

	got, err = castValue("json", `[1,"two"]`)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, "two"}, got)
}

func TestCastObject(t *testing.T) {
	got, err := castValue("object", `{"theme":"dark"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "dark"}, got)

	// Object casts demand object-shaped JSON.
	_, err = castValue("object", `[1,2]`)
	assert.Error(t, err)
}

func TestCastMalformedJSONPropagates(t *testing.T) {
	_, err := castValue("json", `{not json`)
	assert.Error(t, err)
}

func TestCastNilPassesThrough(t *testing.T) {
	for _, kind := range []string{"int", "float", "string", "bool", "json", "object", "array"} {
		got, err := castValue(kind, nil)
		require.NoError(t, err)
		assert.Nil(t, got, kind)
	}
}

func TestCastUnknownKindPassesThrough(t *testing.T) {
	got, err := castValue("datetime", "2026-08-25")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-25", got)
}

func TestCastKindNormalization(t *testing.T) {
	got, err := castValue("  Integer ", "5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	got, err = castValue("BOOLEAN", 0)
	require.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestCastIdempotence(t *testing.T) {
	kinds := map[string]any{
		"int":    "1",
		"float":  "2.5",
		"string": 42,
		"bool":   "yes",
		"json":   `{"a":1}`,
		"array":  `[1,2]`,
		"object": `{"a":1}`,
	}
	for kind, in := range kinds {
		once, err := castValue(kind, in)
		require.NoError(t, err, kind)
		twice, err := castValue(kind, once)
		require.NoError(t, err, kind)
		assert.Equal(t, once, twice, "casting twice with %q must equal casting once", kind)
	}
}

func TestModelCastUsesConfiguredKind(t *testing.T) {
	register(t, &Policy{Name: "doc", Casts: map[string]string{"count": "int"}})

	m, err := New("doc", nil)
	require.NoError(t, err)

	got, err := m.Cast("count", "12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)

	// No cast configured: unchanged.
	got, err = m.Cast("title", "12")
	require.NoError(t, err)
	assert.Equal(t, "12", got)
}

func TestSetAttributeSerializesJSONCasts(t *testing.T) {
	register(t, &Policy{Name: "doc", Casts: map[string]string{"settings": "json"}})

	m, err := New("doc", nil)
	require.NoError(t, err)
	require.NoError(t, m.SetAttribute("settings", map[string]any{"theme": "dark"}))

	raw, _ := m.Store().Get("settings")
	assert.Equal(t, `{"theme":"dark"}`, raw, "stored as JSON text")

	// Read decodes it back.
	v, _, err := m.GetAttribute("settings")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"theme": "dark"}, v)
}

func TestSetAttributeKeepsPreserializedJSON(t *testing.T) {
	register(t, &Policy{Name: "doc", Casts: map[string]string{"settings": "json"}})

	m, err := New("doc", nil)
	require.NoError(t, err)
	require.NoError(t, m.SetAttribute("settings", `{"theme":"dark"}`))

	raw, _ := m.Store().Get("settings")
	assert.Equal(t, `{"theme":"dark"}`, raw, "no double encoding")
}

func TestGetAttributeDecodeErrorPropagates(t *testing.T) {
	register(t, &Policy{Name: "doc", Casts: map[string]string{"settings": "json"}})

	m, err := New("doc", nil)
	require.NoError(t, err)
	m.Store().Set("settings", "{broken")

	_, _, err = m.GetAttribute("settings")
	assert.Error(t, err)
}

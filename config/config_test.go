package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.True(t, FilterNulls())
	assert.Equal(t, "snake", KeyCase())
	assert.Equal(t, "_", SnakeDelimiter())
	assert.False(t, LogJSON())
}

func TestSetOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Set("export.filter_nulls", false)
	Set("export.key_case", "camel")

	assert.False(t, FilterNulls())
	assert.Equal(t, "camel", KeyCase())
}

func TestEnvironmentOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("MODELKIT_EXPORT_KEY_CASE", "studly")

	assert.Equal(t, "studly", KeyCase())
}

func TestLoad(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Export.FilterNulls)
	assert.Equal(t, "snake", cfg.Export.KeyCase)
}

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrTypeNotRegistered, "looking up policy \"user\"")

	assert.True(t, Is(err, ErrTypeNotRegistered))
	assert.True(t, IsTypeNotRegisteredError(err))
	assert.False(t, IsTypeNotRegisteredError(nil))
	assert.False(t, IsTypeNotRegisteredError(New("other")))
}

func TestNewInvalidPolicyError(t *testing.T) {
	err := NewInvalidPolicyError("policy %q has no name", "x")

	require.NotNil(t, err)
	assert.True(t, IsInvalidPolicyError(err))
	assert.Contains(t, err.Error(), "has no name")
}

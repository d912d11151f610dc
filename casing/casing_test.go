package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	assert.Equal(t, "first_name", Snake("firstName"))
	assert.Equal(t, "first_name", Snake("FirstName"))
	assert.Equal(t, "display_color", Snake("DisplayColor"))
}

func TestSnakeAlreadyLowercaseUnchanged(t *testing.T) {
	// Fully lower-case input is returned verbatim, underscores and all.
	assert.Equal(t, "first_name", Snake("first_name"))
	assert.Equal(t, "already lower", Snake("already lower"))
}

func TestSnakeStripsWhitespace(t *testing.T) {
	assert.Equal(t, "first_name", Snake("First Name"))
	assert.Equal(t, "a_b_c", Snake("A B C"))
}

func TestSnakeDelim(t *testing.T) {
	assert.Equal(t, "first-name", SnakeDelim("firstName", "-"))
	assert.Equal(t, "first.name", SnakeDelim("FirstName", "."))
}

func TestSnakeAcronymsNotSpecialCased(t *testing.T) {
	assert.Equal(t, "h_t_t_p_server", Snake("HTTPServer"))
}

func TestStudly(t *testing.T) {
	assert.Equal(t, "FirstName", Studly("first_name"))
	assert.Equal(t, "FirstName", Studly("first-name"))
	assert.Equal(t, "FooBarBaz", Studly("foo_bar-baz"))
	assert.Equal(t, "Name", Studly("name"))
	assert.Equal(t, "", Studly(""))
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "firstName", Camel("first_name"))
	assert.Equal(t, "fullName", Camel("full-name"))
	assert.Equal(t, "", Camel(""))
}

func TestCamelSnakeRoundTrip(t *testing.T) {
	for _, name := range []string{"firstName", "displayColor", "opacity", "richStringFields"} {
		assert.Equal(t, name, Camel(Snake(name)))
	}
}

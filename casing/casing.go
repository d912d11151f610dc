// Package casing converts identifier names between snake_case and
// StudlyCase/camelCase conventions.
//
// These are the conversions used when projecting attribute maps to their
// wire representation: internal names are free-form, export keys follow a
// configured convention.
//
// Usage:
//
//	casing.Snake("firstName")        // "first_name"
//	casing.Studly("first_name")      // "FirstName"
//	casing.Camel("first_name")       // "firstName"
package casing

import (
	"strings"
	"unicode"
)

// Snake converts s to snake_case using "_" as the delimiter.
func Snake(s string) string {
	return SnakeDelim(s, "_")
}

// SnakeDelim converts s to lower case with delim inserted before every
// upper-case letter that does not start the string. Input that is already
// fully lower case is returned unchanged, whitespace is stripped.
// Only ASCII-style case boundaries are considered; acronym runs are not
// special-cased (HTTPServer -> h_t_t_p_server).
func SnakeDelim(s, delim string) string {
	if s == strings.ToLower(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(delim)*2)
	first := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if unicode.IsUpper(r) && !first {
			b.WriteString(delim)
		}
		b.WriteRune(unicode.ToLower(r))
		first = false
	}
	return b.String()
}

// Studly converts s to StudlyCase (PascalCase): "-" and "_" are treated as
// word breaks, each word is capitalized, and the breaks are removed.
func Studly(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})

	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Camel converts s to camelCase: Studly with the leading character
// lowered. Camel(Snake(s)) round-trips any single camelCase identifier.
func Camel(s string) string {
	studly := Studly(s)
	if studly == "" {
		return studly
	}
	r := []rune(studly)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

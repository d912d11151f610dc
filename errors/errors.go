// Package errors provides error handling for modelkit.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrTypeNotRegistered) {
//	    // handle unknown model type
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for use across modelkit.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrTypeNotRegistered indicates no policy was registered under the
	// requested model type name
	ErrTypeNotRegistered = New("model type not registered")

	// ErrTypeAlreadyRegistered indicates a policy was registered twice
	// under the same model type name
	ErrTypeAlreadyRegistered = New("model type already registered")

	// ErrInvalidPolicy indicates a policy that cannot be registered
	// (missing name, append without getter, malformed cast table)
	ErrInvalidPolicy = New("invalid model policy")
)

// IsTypeNotRegisteredError checks if an error is or wraps ErrTypeNotRegistered
func IsTypeNotRegisteredError(err error) bool {
	return err != nil && Is(err, ErrTypeNotRegistered)
}

// IsInvalidPolicyError checks if an error is or wraps ErrInvalidPolicy
func IsInvalidPolicyError(err error) bool {
	return err != nil && Is(err, ErrInvalidPolicy)
}

// NewInvalidPolicyError creates an invalid-policy error with a formatted message
func NewInvalidPolicyError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidPolicy, Newf(format, args...).Error())
}

package sverrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnsupportedReplace indicates a hook attempted to replace or delete a
	// node through a slot that cannot be rebound.
	ErrUnsupportedReplace = errors.New("unsupported replacement")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Replace target identifiers used in ReplaceError.Target.
const (
	// TargetRoot identifies the implicit root slot. The root node has no
	// parent slot to rebind it into, so replacing it always fails.
	TargetRoot = "root"

	// TargetItem identifies an element yielded by a non-index-addressable
	// iterable. Such elements have no backing storage to write into.
	TargetItem = "iterated item"

	// TargetArrayElement identifies an element of a fixed-length array.
	// Arrays cannot grow or shrink, so replace-or-delete is unavailable.
	TargetArrayElement = "array element"

	// TargetField identifies a field of a struct reached by value.
	// Only fields of addressable structs can be written back.
	TargetField = "struct field"
)

// ReplaceError represents a failed attempt to commit a replacement or
// deletion back into the slot a node was reached through.
// This includes structurally non-rebindable slots (the root, items yielded
// by pure iterators) and values whose type cannot be stored in the slot.
type ReplaceError struct {
	// Target identifies the kind of slot that rejected the replacement.
	// Common values are the Target* constants in this package.
	Target string
	// Path is the traversal path of the node being replaced
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReplaceError) Error() string {
	msg := "unsupported replacement"
	if e.Target != "" {
		msg += " of " + e.Target
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReplaceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReplaceError) Is(target error) bool {
	return target == ErrUnsupportedReplace
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

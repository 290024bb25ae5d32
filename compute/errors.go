// SPDX-License-Identifier: MIT
// Package compute: classified error type (unified, consistent).
// This file defines the ONLY error surface numeric operations may return to
// the evaluator. All algorithms MUST classify their failures through the
// constructors below and tests MUST check kinds via KindOf and causes via
// errors.Is. No algorithm should panic on user-triggered error conditions.

package compute

import (
	"errors"
	"fmt"
)

// Kind partitions every failure in the system into one of four classes.
//
// ERROR PRIORITY (documented, enforced in tests):
// validation (malformed shape/dimensions) -> computation (algorithm failed)
// -> runtime (evaluator-level: undefined name, bad syntax) -> memory
// (reserved for allocation-failure reporting).
type Kind int

const (
	// Validation indicates malformed input shape or dimensions.
	Validation Kind = iota

	// Computation indicates a failure during a numeric algorithm.
	Computation

	// Runtime indicates an evaluator-level failure (undefined variable or
	// function, malformed statement syntax).
	Runtime

	// Memory is reserved for allocation-failure reporting.
	Memory
)

// kindNames maps each Kind to its stable textual label.
// Order MUST match the constant block above.
var kindNames = [...]string{"validation", "computation", "runtime", "memory"}

// String returns the stable lowercase label of the kind.
// Unknown kinds format as "kind(<n>)" instead of panicking.
func (k Kind) String() string {
	if k < Validation || k > Memory {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Error is the classified failure envelope: a kind, a human-readable message
// and an optional wrapped cause. It satisfies the error interface and
// supports errors.Is/errors.As against the underlying cause chain.
//
// Errors are terminal: there is no retry logic anywhere in the system, and
// every Error must be surfaced verbatim to the caller.
type Error struct {
	// Kind classifies the failure (Validation, Computation, Runtime, Memory).
	Kind Kind

	// Msg is the human-readable description shown to the notebook user.
	Msg string

	// Cause is the wrapped lower-level error, or nil when the failure
	// originates at this boundary.
	Cause error
}

// Error renders as "<kind>: <msg>" with the cause appended when present.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As keep matching
// package-level sentinels through the classification boundary.
func (e *Error) Unwrap() error { return e.Cause }

// newError builds a classified error with a formatted message and no cause.
func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Validationf returns a Validation-kind error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return newError(Validation, format, args...)
}

// Computationf returns a Computation-kind error with a formatted message.
func Computationf(format string, args ...any) *Error {
	return newError(Computation, format, args...)
}

// Runtimef returns a Runtime-kind error with a formatted message.
func Runtimef(format string, args ...any) *Error {
	return newError(Runtime, format, args...)
}

// Memoryf returns a Memory-kind error with a formatted message.
// Reserved: no current producer, kept for allocation-failure reporting.
func Memoryf(format string, args ...any) *Error {
	return newError(Memory, format, args...)
}

// Classify wraps cause under kind with a contextual message, preserving the
// original error for errors.Is/errors.As. Returns nil when cause is nil so
// call sites can gate with a single if.
//
// Reclassification policy: wrapping an already classified error replaces its
// kind at the outer layer — the evaluator uses this to turn per-line
// validation/computation failures into Runtime errors enriched with the
// offending source line, while the inner kind stays reachable via errors.As.
func Classify(kind Kind, cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}

	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf reports the kind of the outermost *Error in err's chain.
// The boolean is false when no classified error is present.
//
// Complexity: O(depth of the wrap chain).
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}

	return 0, false
}

// IsKind reports whether the outermost classified error in err's chain has
// the given kind. Convenience for test assertions and boundary checks.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)

	return ok && k == kind
}

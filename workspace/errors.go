// SPDX-License-Identifier: MIT
// Package workspace: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// evaluator. Call sites classify them through compute.Classify; tests check
// them via errors.Is. Messages are the user-facing phrases notebook cells
// display, prefixed for grepping.

package workspace

import "errors"

var (
	// ErrInvalidAssignment indicates an assignment with an empty name or an
	// empty right-hand side after trimming, or a non-identifier target.
	ErrInvalidAssignment = errors.New("workspace: invalid assignment")

	// ErrVariableNotDefined indicates a method-call receiver that is not
	// bound in the environment.
	ErrVariableNotDefined = errors.New("workspace: variable not defined")

	// ErrMethodNotFound indicates a method name absent from the receiver
	// kind's dispatch table.
	ErrMethodNotFound = errors.New("workspace: method not found")

	// ErrFunctionNotDefined indicates a call prefix that does not resolve
	// to a built-in (or bound) function value.
	ErrFunctionNotDefined = errors.New("workspace: function not defined")

	// ErrMatrixLiteral indicates grid-literal text that does not deserialize
	// to well-formed rows of equal length.
	ErrMatrixLiteral = errors.New("workspace: invalid matrix data format")

	// ErrObjectLiteral indicates malformed {key: value} option-bag text.
	ErrObjectLiteral = errors.New("workspace: invalid object literal")

	// ErrBadArguments indicates a call with the wrong argument count or an
	// argument of the wrong kind for the callee.
	ErrBadArguments = errors.New("workspace: invalid arguments")
)

// SPDX-License-Identifier: MIT
// Package workspace: the Value union.
//
// Value is a closed tagged union over the four kinds a notebook variable
// can hold. Every consumption site (formatting, method lookup) switches
// exhaustively over Kind; adding a kind means visiting each switch.

package workspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signalbook/signalbook/matrix"
	"github.com/signalbook/signalbook/signal"
)

// Kind discriminates the Value union.
type Kind int

const (
	// KindNumber is a scalar float64.
	KindNumber Kind = iota

	// KindSignal is a *signal.Signal.
	KindSignal

	// KindMatrix is a *matrix.Dense.
	KindMatrix

	// KindFunction is a built-in callable.
	KindFunction
)

// kindNames maps each Kind to its display label; order matches the consts.
var kindNames = [...]string{"number", "signal", "matrix", "function"}

// String returns the display label of the kind.
func (k Kind) String() string {
	if k < KindNumber || k > KindFunction {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// functionPlaceholder is the fixed token function values format as.
const functionPlaceholder = "[function]"

// Value is one environment slot: exactly one of the four payloads is live,
// selected by kind. The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64
	sig  *signal.Signal
	mat  *matrix.Dense
	fn   *Builtin
}

// Num wraps a scalar.
func Num(v float64) Value { return Value{kind: KindNumber, num: v} }

// Sig wraps a Signal.
func Sig(s *signal.Signal) Value { return Value{kind: KindSignal, sig: s} }

// Mat wraps a Matrix.
func Mat(m *matrix.Dense) Value { return Value{kind: KindMatrix, mat: m} }

// Fn wraps a built-in function.
func Fn(b *Builtin) Value { return Value{kind: KindFunction, fn: b} }

// Kind reports which payload is live.
func (v Value) Kind() Kind { return v.kind }

// Number returns the scalar payload; ok is false for other kinds.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Signal returns the Signal payload; ok is false for other kinds.
func (v Value) Signal() (*signal.Signal, bool) { return v.sig, v.kind == KindSignal }

// Matrix returns the Matrix payload; ok is false for other kinds.
func (v Value) Matrix() (*matrix.Dense, bool) { return v.mat, v.kind == KindMatrix }

// Function returns the Builtin payload; ok is false for other kinds.
func (v Value) Function() (*Builtin, bool) { return v.fn, v.kind == KindFunction }

// Format renders the value the way a notebook cell displays it.
// Exhaustive over the union: numbers in shortest 'g' form, Signals in their
// preview form, Matrices row per line, functions as a fixed placeholder.
func (v Value) Format() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindSignal:
		return v.sig.String()
	case KindMatrix:
		return strings.TrimRight(v.mat.String(), "\n")
	case KindFunction:
		return functionPlaceholder
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

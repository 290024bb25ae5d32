// SPDX-License-Identifier: MIT
// Package workspace: built-in functions.
//
// Built-ins are registered once at Workspace construction and live in the
// environment as function values. Assigning to a built-in name shadows it
// for subsequent lookups within that Workspace instance.
//
// Each built-in declares its argument policy up front:
//   - ArgNumbers — comma-split arguments, each evaluated to a number;
//   - ArgObject  — one {key: value} option-bag literal;
//   - ArgRawGrid — one raw nested-array grid literal.
//
// Every built-in unwraps its kernel's compute.Result payload so the value
// can be bound directly to a variable.

package workspace

import (
	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/matrix"
	"github.com/signalbook/signalbook/signal"
)

// ArgPolicy selects how the evaluator parses a built-in's argument text.
type ArgPolicy int

const (
	// ArgNumbers splits on top-level commas and evaluates each argument
	// as a numeric literal first, expression second.
	ArgNumbers ArgPolicy = iota

	// ArgObject parses the whole argument text as one object literal.
	ArgObject

	// ArgRawGrid parses the whole argument text as one grid literal.
	ArgRawGrid
)

// Builtin is a pre-registered callable environment value.
type Builtin struct {
	// Name is the environment key the builtin registers under.
	Name string

	// Policy selects the argument-parsing strategy.
	Policy ArgPolicy

	// call executes the builtin. Exactly one of args/bag/grid is populated,
	// matching Policy.
	call func(args []float64, bag objectLit, grid [][]float64) (Value, error)
}

// argsErrorf wraps ErrBadArguments with callee context, classified as
// validation the way every malformed-input failure is.
func argsErrorf(name, detail string) error {
	return compute.Classify(compute.Validation, ErrBadArguments, "%s: %s", name, detail)
}

// builtinSine implements sine(freq, duration, sampleRate=44100).
func builtinSine(args []float64, _ objectLit, _ [][]float64) (Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return Value{}, argsErrorf("sine", "expects (freq, duration[, sampleRate])")
	}
	rate := signal.DefaultSampleRate
	if len(args) == 3 {
		rate = args[2]
	}
	res, err := signal.Sine(args[0], args[1], rate, 1, 0)
	if err != nil {
		return Value{}, err
	}

	return Sig(res.Value), nil
}

// builtinSquare implements square(freq, duration, sampleRate=44100).
func builtinSquare(args []float64, _ objectLit, _ [][]float64) (Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return Value{}, argsErrorf("square", "expects (freq, duration[, sampleRate])")
	}
	rate := signal.DefaultSampleRate
	if len(args) == 3 {
		rate = args[2]
	}
	res, err := signal.Square(args[0], args[1], rate, 1, 0)
	if err != nil {
		return Value{}, err
	}

	return Sig(res.Value), nil
}

// builtinChirp implements chirp({startFreq, endFreq, duration, method,
// sampleRate}).
func builtinChirp(_ []float64, bag objectLit, _ [][]float64) (Value, error) {
	var opts signal.ChirpOptions
	var err error
	if opts.StartFreq, err = bag.number("startFreq", 0); err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "chirp")
	}
	if opts.EndFreq, err = bag.number("endFreq", 0); err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "chirp")
	}
	if opts.Duration, err = bag.number("duration", 0); err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "chirp")
	}
	if opts.SampleRate, err = bag.number("sampleRate", 0); err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "chirp")
	}
	method, err := bag.text("method", string(signal.ChirpLinear))
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "chirp")
	}
	opts.Method = signal.ChirpMethod(method)

	res, err := signal.Chirp(opts)
	if err != nil {
		return Value{}, err
	}

	return Sig(res.Value), nil
}

// builtinMatrix implements matrix([[...], ...]).
func builtinMatrix(_ []float64, _ objectLit, grid [][]float64) (Value, error) {
	m, err := matrix.NewFromRows(grid)
	if err != nil {
		// Shape failures surface under the literal sentinel the UI knows.
		return Value{}, compute.Classify(compute.Validation, ErrMatrixLiteral, "%v", err)
	}

	return Mat(m), nil
}

// registerBuiltins seeds a fresh environment with the generator functions.
// Called once per Workspace; duplicate names would be a programmer error
// and panic at construction.
func registerBuiltins(env map[string]Value) {
	for _, b := range []*Builtin{
		{Name: "sine", Policy: ArgNumbers, call: builtinSine},
		{Name: "square", Policy: ArgNumbers, call: builtinSquare},
		{Name: "chirp", Policy: ArgObject, call: builtinChirp},
		{Name: "matrix", Policy: ArgRawGrid, call: builtinMatrix},
	} {
		if _, dup := env[b.Name]; dup {
			panic("workspace: duplicate builtin " + b.Name)
		}
		env[b.Name] = Fn(b)
	}
}

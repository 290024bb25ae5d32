// SPDX-License-Identifier: MIT
// Package workspace: per-kind method dispatch.
//
// receiver.method(args) calls resolve through an explicit dispatch table
// per value kind, validated at registration time, so an unknown method
// fails fast with a clear validation error instead of a generic
// "not a function". Handlers are typed: each declares its argument policy
// and arity, and the evaluator parses arguments before invoking.

package workspace

import (
	"math"

	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/matrix"
	"github.com/signalbook/signalbook/signal"
)

// methodPolicy selects how the evaluator parses a method's argument text.
type methodPolicy int

const (
	// methodNoArgs requires empty argument text.
	methodNoArgs methodPolicy = iota

	// methodValues splits on top-level commas and evaluates each argument
	// as an expression.
	methodValues

	// methodObject parses the whole argument text as one object literal.
	methodObject
)

// method is one dispatch-table entry.
type method struct {
	policy           methodPolicy
	minArgs, maxArgs int // argument count bounds for methodValues
	invoke           func(recv Value, vals []Value, bag objectLit) (Value, error)
}

// methodTables maps value kind → method name → handler. Built once at
// package load; registration panics on duplicates or nil handlers
// (programmer error), so lookup failures at run time can only mean an
// unknown name.
var methodTables = map[Kind]map[string]*method{}

// register installs a method handler, enforcing table invariants.
func register(kind Kind, name string, m *method) {
	if m == nil || m.invoke == nil {
		panic("workspace: nil method handler for " + name)
	}
	tbl := methodTables[kind]
	if tbl == nil {
		tbl = make(map[string]*method)
		methodTables[kind] = tbl
	}
	if _, dup := tbl[name]; dup {
		panic("workspace: duplicate method " + name)
	}
	tbl[name] = m
}

// lookupMethod resolves a method for the receiver kind.
// Errors: ErrMethodNotFound (validation kind).
func lookupMethod(kind Kind, name string) (*method, error) {
	if m, ok := methodTables[kind][name]; ok {
		return m, nil
	}

	return nil, compute.Classify(compute.Validation, ErrMethodNotFound, "%s.%s", kind, name)
}

// intArg converts a numeric argument to a non-fractional int (indices,
// counts). Fractional values are rejected rather than truncated.
func intArg(name string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, argsErrorf(name, "expects an integer")
	}

	return int(v), nil
}

// asMatrix extracts a matrix operand or fails with callee context.
func asMatrix(name string, v Value) (*matrix.Dense, error) {
	m, ok := v.Matrix()
	if !ok {
		return nil, argsErrorf(name, "expects a matrix argument")
	}

	return m, nil
}

// ---------- Signal methods ----------

// signalFFT renders the complex bins as a 2×N matrix: row 0 real, row 1
// imaginary. The union has no complex kind; two rows keep both parts
// addressable from the notebook.
func signalFFT(recv Value, _ []Value, _ objectLit) (Value, error) {
	s, _ := recv.Signal()
	res, err := s.FFT()
	if err != nil {
		return Value{}, err
	}

	re := make([]float64, len(res.Value))
	im := make([]float64, len(res.Value))
	for i, b := range res.Value {
		re[i] = real(b)
		im[i] = imag(b)
	}
	m, err := matrix.NewFromRows([][]float64{re, im})
	if err != nil {
		return Value{}, compute.Classify(compute.Computation, err, "fft")
	}

	return Mat(m), nil
}

// signalSpectrum returns the magnitude spectrum as a Signal so the plot
// layer can render it like any other series (bin k ↔ frequency k·rate/N).
func signalSpectrum(recv Value, _ []Value, _ objectLit) (Value, error) {
	s, _ := recv.Signal()
	res, err := s.Spectrum()
	if err != nil {
		return Value{}, err
	}
	spec, err := signal.New(res.Value, s.SampleRate(), nil)
	if err != nil {
		return Value{}, compute.Classify(compute.Computation, err, "getSpectrum")
	}

	return Sig(spec), nil
}

// signalApplyWindow implements s.applyWindow({type, length}).
func signalApplyWindow(recv Value, _ []Value, bag objectLit) (Value, error) {
	s, _ := recv.Signal()
	typ, err := bag.text("type", "")
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "applyWindow")
	}
	length, err := bag.number("length", 0)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "applyWindow")
	}
	n, err := intArg("applyWindow", length)
	if err != nil {
		return Value{}, err
	}

	res, err := s.ApplyWindow(signal.WindowOptions{Type: signal.WindowType(typ), Length: n})
	if err != nil {
		return Value{}, err
	}

	return Sig(res.Value), nil
}

// signalWavelet implements s.waveletTransform({wavelet, scales}).
func signalWavelet(recv Value, _ []Value, bag objectLit) (Value, error) {
	s, _ := recv.Signal()
	name, err := bag.text("wavelet", string(signal.Morlet))
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "waveletTransform")
	}
	scales, err := bag.number("scales", 1)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "waveletTransform")
	}
	n, err := intArg("waveletTransform", scales)
	if err != nil {
		return Value{}, err
	}

	res, err := s.WaveletTransform(signal.WaveletOptions{Wavelet: signal.Wavelet(name), Scales: n})
	if err != nil {
		return Value{}, err
	}

	return Mat(res.Value), nil
}

// signalDecompose implements s.decompose({method, numModes}); the IMFs come
// back as a matrix with one row per mode.
func signalDecompose(recv Value, _ []Value, bag objectLit) (Value, error) {
	s, _ := recv.Signal()
	name, err := bag.text("method", string(signal.EMDMethod))
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "decompose")
	}
	modes, err := bag.number("numModes", 1)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "decompose")
	}
	n, err := intArg("decompose", modes)
	if err != nil {
		return Value{}, err
	}

	res, err := s.Decompose(signal.DecomposeOptions{Method: signal.DecomposeMethod(name), NumModes: n})
	if err != nil {
		return Value{}, err
	}

	rows := make([][]float64, len(res.Value))
	for i, imf := range res.Value {
		rows[i] = imf.Data()
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return Value{}, compute.Classify(compute.Computation, err, "decompose")
	}

	return Mat(m), nil
}

// signalAnalyze implements s.analyze({metrics, windowSize}); the requested
// statistics come back as a 1×k matrix in metric order.
func signalAnalyze(recv Value, _ []Value, bag objectLit) (Value, error) {
	s, _ := recv.Signal()
	metrics, err := bag.strList("metrics")
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "analyze")
	}
	win, err := bag.number("windowSize", 0)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "analyze")
	}
	w, err := intArg("analyze", win)
	if err != nil {
		return Value{}, err
	}

	res, err := s.Analyze(signal.AnalyzeOptions{Metrics: metrics, WindowSize: w})
	if err != nil {
		return Value{}, err
	}
	if len(res.Value) == 0 {
		return Value{}, argsErrorf("analyze", "no known metrics requested")
	}

	row := make([]float64, len(res.Value))
	for i, m := range res.Value {
		row[i] = m.Value
	}
	m, err := matrix.NewFromRows([][]float64{row})
	if err != nil {
		return Value{}, compute.Classify(compute.Computation, err, "analyze")
	}

	return Mat(m), nil
}

// signalDTW implements a.dtw(b): the warping distance to another signal.
func signalDTW(recv Value, vals []Value, _ objectLit) (Value, error) {
	s, _ := recv.Signal()
	other, ok := vals[0].Signal()
	if !ok {
		return Value{}, argsErrorf("dtw", "expects a signal argument")
	}
	res, err := s.DTW(other, nil)
	if err != nil {
		return Value{}, err
	}

	return Num(res.Value), nil
}

// signalLength implements s.length().
func signalLength(recv Value, _ []Value, _ objectLit) (Value, error) {
	s, _ := recv.Signal()

	return Num(float64(s.Len())), nil
}

// signalSampleRate implements s.sampleRate().
func signalSampleRate(recv Value, _ []Value, _ objectLit) (Value, error) {
	s, _ := recv.Signal()

	return Num(s.SampleRate()), nil
}

// ---------- Matrix methods ----------

// matrixAdd implements m.add(other).
func matrixAdd(recv Value, vals []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	other, err := asMatrix("add", vals[0])
	if err != nil {
		return Value{}, err
	}
	res, err := matrix.Add(m, other)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "add")
	}

	return Mat(res.Value), nil
}

// matrixHadamard implements m.hadamard(other).
func matrixHadamard(recv Value, vals []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	other, err := asMatrix("hadamard", vals[0])
	if err != nil {
		return Value{}, err
	}
	res, err := matrix.Hadamard(m, other)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "hadamard")
	}

	return Mat(res.Value), nil
}

// matrixMultiply implements m.multiply(x): scalar broadcast for a number
// argument, standard matrix product for a matrix argument.
func matrixMultiply(recv Value, vals []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	switch vals[0].Kind() {
	case KindNumber:
		alpha, _ := vals[0].Number()
		res, err := matrix.Scale(m, alpha)
		if err != nil {
			return Value{}, compute.Classify(compute.Validation, err, "multiply")
		}

		return Mat(res.Value), nil

	case KindMatrix:
		other, _ := vals[0].Matrix()
		res, err := matrix.Mul(m, other)
		if err != nil {
			return Value{}, compute.Classify(compute.Validation, err, "multiply")
		}

		return Mat(res.Value), nil

	default:
		return Value{}, argsErrorf("multiply", "expects a number or matrix argument")
	}
}

// matrixTranspose implements m.transpose().
func matrixTranspose(recv Value, _ []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	res, err := matrix.Transpose(m)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "transpose")
	}

	return Mat(res.Value), nil
}

// matrixInverse implements m.inverse().
func matrixInverse(recv Value, _ []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	res, err := matrix.Inverse(m)
	if err != nil {
		return Value{}, compute.Classify(compute.Computation, err, "inverse")
	}

	return Mat(res.Value), nil
}

// matrixAt implements m.at(i, j).
func matrixAt(recv Value, vals []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	i, err := numericIndex("at", vals[0])
	if err != nil {
		return Value{}, err
	}
	j, err := numericIndex("at", vals[1])
	if err != nil {
		return Value{}, err
	}
	v, err := m.At(i, j)
	if err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "at")
	}

	return Num(v), nil
}

// matrixSet implements m.set(i, j, v) — the explicit in-place setter.
// Returns the mutated receiver so the edit echoes in the cell.
func matrixSet(recv Value, vals []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()
	i, err := numericIndex("set", vals[0])
	if err != nil {
		return Value{}, err
	}
	j, err := numericIndex("set", vals[1])
	if err != nil {
		return Value{}, err
	}
	v, ok := vals[2].Number()
	if !ok {
		return Value{}, argsErrorf("set", "expects a numeric value")
	}
	if err = m.Set(i, j, v); err != nil {
		return Value{}, compute.Classify(compute.Validation, err, "set")
	}

	return Mat(m), nil
}

// matrixRows implements m.rows().
func matrixRows(recv Value, _ []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()

	return Num(float64(m.Rows())), nil
}

// matrixCols implements m.cols().
func matrixCols(recv Value, _ []Value, _ objectLit) (Value, error) {
	m, _ := recv.Matrix()

	return Num(float64(m.Cols())), nil
}

// numericIndex extracts an integer index argument.
func numericIndex(name string, v Value) (int, error) {
	f, ok := v.Number()
	if !ok {
		return 0, argsErrorf(name, "expects numeric indices")
	}

	return intArg(name, f)
}

// init wires both dispatch tables. Panics here mean a programmer error in
// the registrations, caught on first package load.
func init() {
	register(KindSignal, "fft", &method{policy: methodNoArgs, invoke: signalFFT})
	register(KindSignal, "getSpectrum", &method{policy: methodNoArgs, invoke: signalSpectrum})
	register(KindSignal, "applyWindow", &method{policy: methodObject, invoke: signalApplyWindow})
	register(KindSignal, "waveletTransform", &method{policy: methodObject, invoke: signalWavelet})
	register(KindSignal, "decompose", &method{policy: methodObject, invoke: signalDecompose})
	register(KindSignal, "analyze", &method{policy: methodObject, invoke: signalAnalyze})
	register(KindSignal, "dtw", &method{policy: methodValues, minArgs: 1, maxArgs: 1, invoke: signalDTW})
	register(KindSignal, "length", &method{policy: methodNoArgs, invoke: signalLength})
	register(KindSignal, "sampleRate", &method{policy: methodNoArgs, invoke: signalSampleRate})

	register(KindMatrix, "add", &method{policy: methodValues, minArgs: 1, maxArgs: 1, invoke: matrixAdd})
	register(KindMatrix, "hadamard", &method{policy: methodValues, minArgs: 1, maxArgs: 1, invoke: matrixHadamard})
	register(KindMatrix, "multiply", &method{policy: methodValues, minArgs: 1, maxArgs: 1, invoke: matrixMultiply})
	register(KindMatrix, "transpose", &method{policy: methodNoArgs, invoke: matrixTranspose})
	register(KindMatrix, "inverse", &method{policy: methodNoArgs, invoke: matrixInverse})
	register(KindMatrix, "at", &method{policy: methodValues, minArgs: 2, maxArgs: 2, invoke: matrixAt})
	register(KindMatrix, "set", &method{policy: methodValues, minArgs: 3, maxArgs: 3, invoke: matrixSet})
	register(KindMatrix, "rows", &method{policy: methodNoArgs, invoke: matrixRows})
	register(KindMatrix, "cols", &method{policy: methodNoArgs, invoke: matrixCols})
}

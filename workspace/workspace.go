// SPDX-License-Identifier: MIT
// Package workspace: the evaluator itself.
//
// Workspace owns a private name→value environment and executes notebook
// source one statement line at a time. execute is line-atomic in output
// only: the first failing line aborts the call and discards the text
// produced so far, but bindings made by earlier lines persist.

package workspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signalbook/signalbook/compute"
)

// commentMarker introduces a line or inline comment.
const commentMarker = "//"

// Workspace is one notebook session's evaluator. Not safe for concurrent
// use: Execute mutates the environment in place and assumes exclusive
// access for the duration of a call. One session, one Workspace.
type Workspace struct {
	env map[string]Value
}

// New constructs a Workspace with the built-in generators registered.
func New() *Workspace {
	env := make(map[string]Value)
	registerBuiltins(env)

	return &Workspace{env: env}
}

// GetValue is the read-only lookup the plot layer uses: it reports the
// current binding for name, or false when the name is absent.
func (w *Workspace) GetValue(name string) (Value, bool) {
	v, ok := w.env[name]

	return v, ok
}

// Execute runs multi-line source and returns the accumulated formatted
// output, one line per producing statement, trailing whitespace trimmed.
//
// Stage 1 (Split)    — break source into lines, strip comments, drop blanks.
// Stage 2 (Evaluate) — execute surviving lines in order; the first failure
// aborts the call with a runtime-kind error carrying the offending line's
// text. Assignments made by earlier lines are not rolled back.
//
// Complexity: O(total source length) parse work plus the cost of the
// numeric kernels the statements invoke.
func (w *Workspace) Execute(source string) (string, error) {
	var out []string
	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}
		text, err := w.execLine(line)
		if err != nil {
			return "", compute.Classify(compute.Runtime, err, "error in '%s'", line)
		}
		if text != "" {
			out = append(out, text)
		}
	}

	return strings.TrimRight(strings.Join(out, "\n"), " \t\n"), nil
}

// stripComment removes everything from the first comment marker outside
// quotes to the end of the line.
func stripComment(line string) string {
	inQuote := false
	for i := 0; i+1 < len(line); i++ {
		switch {
		case line[i] == '"':
			inQuote = !inQuote
		case !inQuote && line[i] == '/' && line[i+1] == '/':
			return line[:i]
		}
	}

	return line
}

// execLine runs one trimmed, non-empty statement and returns its
// formatted output.
func (w *Workspace) execLine(line string) (string, error) {
	// An assignment is the only statement form containing '='; the first
	// one splits name from expression.
	if eq := strings.IndexByte(line, '='); eq >= 0 {
		name := strings.TrimSpace(line[:eq])
		expr := strings.TrimSpace(line[eq+1:])
		if name == "" || expr == "" || !isIdentifier(name) {
			return "", compute.Classify(compute.Validation, ErrInvalidAssignment, "'%s'", line)
		}
		v, err := w.evalExpr(expr)
		if err != nil {
			return "", err
		}
		w.env[name] = v

		return fmt.Sprintf("%s = %s", name, v.Format()), nil
	}

	v, err := w.evalExpr(line)
	if err != nil {
		return "", err
	}

	return v.Format(), nil
}

// evalExpr evaluates one expression, in priority order: call, numeric
// literal, variable reference.
func (w *Workspace) evalExpr(expr string) (Value, error) {
	expr = strings.TrimSpace(expr)

	if paren := strings.IndexByte(expr, '('); paren >= 0 {
		return w.evalCall(expr, paren)
	}
	if f, err := strconv.ParseFloat(expr, 64); err == nil {
		return Num(f), nil
	}
	if isIdentifier(expr) {
		if v, ok := w.env[expr]; ok {
			return v, nil
		}

		return Value{}, compute.Classify(compute.Validation, ErrVariableNotDefined, "'%s'", expr)
	}

	return Value{}, compute.Validationf("cannot evaluate expression: '%s'", expr)
}

// evalCall evaluates a function or method call; paren is the offset of the
// first '(' in expr.
func (w *Workspace) evalCall(expr string, paren int) (Value, error) {
	if !strings.HasSuffix(expr, ")") {
		return Value{}, compute.Validationf("malformed call: '%s'", expr)
	}
	callee := strings.TrimSpace(expr[:paren])
	argText := strings.TrimSpace(expr[paren+1 : len(expr)-1])

	if dot := strings.IndexByte(callee, '.'); dot >= 0 {
		return w.evalMethodCall(callee[:dot], callee[dot+1:], argText)
	}

	return w.evalFunctionCall(callee, argText)
}

// evalMethodCall resolves receiver.method(argText) through the dispatch
// tables.
func (w *Workspace) evalMethodCall(recvName, methName, argText string) (Value, error) {
	recv, ok := w.env[recvName]
	if !ok {
		return Value{}, compute.Classify(compute.Validation, ErrVariableNotDefined, "'%s'", recvName)
	}
	m, err := lookupMethod(recv.Kind(), methName)
	if err != nil {
		return Value{}, err
	}

	var vals []Value
	var bag objectLit
	switch m.policy {
	case methodNoArgs:
		if argText != "" {
			return Value{}, argsErrorf(methName, "takes no arguments")
		}

	case methodValues:
		parts := splitTopLevel(argText)
		if len(parts) < m.minArgs || len(parts) > m.maxArgs {
			return Value{}, argsErrorf(methName, fmt.Sprintf("expects %d to %d arguments, got %d",
				m.minArgs, m.maxArgs, len(parts)))
		}
		vals = make([]Value, len(parts))
		for i, part := range parts {
			if vals[i], err = w.evalExpr(part); err != nil {
				return Value{}, err
			}
		}

	case methodObject:
		if bag, err = parseObjectLiteral(argText); err != nil {
			return Value{}, compute.Classify(compute.Validation, err, "%s", methName)
		}
	}

	return m.invoke(recv, vals, bag)
}

// evalFunctionCall resolves name(argText) against the environment; only
// function-kind values are callable.
func (w *Workspace) evalFunctionCall(name, argText string) (Value, error) {
	v, ok := w.env[name]
	if !ok {
		return Value{}, compute.Classify(compute.Validation, ErrFunctionNotDefined, "'%s'", name)
	}
	fn, ok := v.Function()
	if !ok {
		return Value{}, compute.Classify(compute.Validation, ErrFunctionNotDefined, "'%s' is not callable", name)
	}

	switch fn.Policy {
	case ArgObject:
		bag, err := parseObjectLiteral(argText)
		if err != nil {
			return Value{}, compute.Classify(compute.Validation, err, "%s", name)
		}

		return fn.call(nil, bag, nil)

	case ArgRawGrid:
		grid, err := parseGridLiteral(argText)
		if err != nil {
			return Value{}, compute.Classify(compute.Validation, err, "%s", name)
		}

		return fn.call(nil, nil, grid)

	default: // ArgNumbers
		args, err := w.evalNumericArgs(name, argText)
		if err != nil {
			return Value{}, err
		}

		return fn.call(args, nil, nil)
	}
}

// evalNumericArgs splits argText on top-level commas and evaluates each
// piece to a number; non-numeric arguments fail the call.
func (w *Workspace) evalNumericArgs(name, argText string) ([]float64, error) {
	parts := splitTopLevel(argText)
	args := make([]float64, len(parts))
	for i, part := range parts {
		v, err := w.evalExpr(part)
		if err != nil {
			return nil, err
		}
		f, ok := v.Number()
		if !ok {
			return nil, argsErrorf(name, fmt.Sprintf("argument %d is not a number", i+1))
		}
		args[i] = f
	}

	return args, nil
}

// splitTopLevel splits s on commas not nested inside (), [], {} or quotes.
// Blank input yields no parts.
func splitTopLevel(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var (
		parts   []string
		depth   int
		inQuote bool
		start   int
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))

	return parts
}

// isIdentifier reports whether s is a legal variable name: a letter or
// underscore followed by letters, digits or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		letter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}

	return true
}

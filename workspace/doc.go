// Package workspace implements the expression evaluator behind each
// notebook session: a name→value environment seeded with built-in
// generators, a single-statement line grammar, and per-kind method
// dispatch onto the signal and matrix kernels.
//
// The workspace package provides:
//
//   - Workspace: per-session state owning the variable environment.
//     Execute runs one or more statement lines; GetValue is the read-only
//     lookup the plotting layer uses to extract series.
//   - Value: a closed tagged union over {number, Signal, Matrix, function}
//     with exhaustive handling at every consumption site.
//   - Dedicated recursive-descent parsers for matrix grid literals and
//     flat key:value object literals — data literals never pass through
//     the expression evaluator.
//
// Statement grammar (line level, no precedence beyond what is listed):
//
//	name = expression     // bind, echo "name = value"
//	expression            // evaluate, echo the value
//	// comment            // stripped, inline comments too
//
// Expressions are, in priority order: a function or method call, a numeric
// literal, or a variable reference. Calls take the form fn(args) or
// receiver.method(args); arguments are numeric literals, variables, nested
// calls, or — where a method takes an option bag — one {key: value} object
// literal.
//
// Concurrency: a Workspace is private per-session state. Execute mutates
// the environment in place and assumes exclusive access for the duration
// of a call; give each concurrent session its own instance.
package workspace

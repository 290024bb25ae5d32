// SPDX-License-Identifier: MIT
// Package workspace: dedicated literal parsers.
//
// Grid literals ([[1,2],[3,4]]) and option-bag object literals
// ({startFreq: 100, method: "linear", metrics: [rms, peak]}) are data, not
// code: they get a small recursive-descent parser of their own instead of
// passing through the expression evaluator, whose grammar is a strict
// superset of what data needs.
//
// Object literal values are numbers, strings (quoted or bare identifiers)
// or flat lists of either. Nesting stops there: option bags are flat.

package workspace

import (
	"fmt"
	"strconv"
	"strings"
)

// litKind discriminates object-literal values.
type litKind int

const (
	litNumber litKind = iota
	litString
	litList
)

// litValue is one parsed object-literal value.
type litValue struct {
	kind litKind
	num  float64
	str  string
	list []string
}

// objectLit is a parsed flat option bag.
type objectLit map[string]litValue

// number returns the numeric field or fallback when absent.
// Returns an error when the key is present but not a number.
func (o objectLit) number(key string, fallback float64) (float64, error) {
	v, ok := o[key]
	if !ok {
		return fallback, nil
	}
	if v.kind != litNumber {
		return 0, fmt.Errorf("key %q: expected a number: %w", key, ErrObjectLiteral)
	}

	return v.num, nil
}

// text returns the string field or fallback when absent.
func (o objectLit) text(key, fallback string) (string, error) {
	v, ok := o[key]
	if !ok {
		return fallback, nil
	}
	if v.kind != litString {
		return "", fmt.Errorf("key %q: expected a string: %w", key, ErrObjectLiteral)
	}

	return v.str, nil
}

// strlist returns the list field, nil when absent. A single string is
// accepted as a one-element list for convenience.
func (o objectLit) strList(key string) ([]string, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	switch v.kind {
	case litList:
		return v.list, nil
	case litString:
		return []string{v.str}, nil
	default:
		return nil, fmt.Errorf("key %q: expected a list: %w", key, ErrObjectLiteral)
	}
}

// litParser is a cursor over literal source text.
type litParser struct {
	src string
	pos int
}

// skipSpace advances past whitespace.
func (p *litParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the current byte, or 0 at end of input.
func (p *litParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

// expect consumes c or fails.
func (p *litParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return fmt.Errorf("position %d: expected %q: %w", p.pos, string(c), ErrObjectLiteral)
	}
	p.pos++

	return nil
}

// parseGridLiteral deserializes nested-array text into rectangular rows.
// Whitespace is stripped first; the shape is validated by matrix.NewFromRows
// downstream, but row-level structure (brackets, commas, numbers) is
// enforced here. Any malformation maps to ErrMatrixLiteral.
func parseGridLiteral(src string) ([][]float64, error) {
	p := &litParser{src: strings.TrimSpace(src)}
	if p.peek() != '[' {
		return nil, ErrMatrixLiteral
	}
	p.pos++

	var rows [][]float64
	for {
		p.skipSpace()
		if p.peek() != '[' {
			return nil, ErrMatrixLiteral
		}
		p.pos++

		row, err := p.parseNumberList(']')
		if err != nil {
			return nil, ErrMatrixLiteral
		}
		rows = append(rows, row)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			p.skipSpace()
			if p.pos != len(p.src) {
				return nil, ErrMatrixLiteral // trailing garbage
			}

			return rows, nil
		default:
			return nil, ErrMatrixLiteral
		}
	}
}

// parseNumberList consumes comma-separated numbers up to the closing byte.
func (p *litParser) parseNumberList(close byte) ([]float64, error) {
	var out []float64
	for {
		p.skipSpace()
		if p.peek() == close && len(out) == 0 {
			return nil, ErrMatrixLiteral // empty rows are rejected
		}
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		out = append(out, n)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case close:
			p.pos++

			return out, nil
		default:
			return nil, ErrMatrixLiteral
		}
	}
}

// parseNumber consumes one float64 token.
func (p *litParser) parseNumber() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			p.pos++

			continue
		}

		break
	}
	if start == p.pos {
		return 0, ErrMatrixLiteral
	}
	n, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, ErrMatrixLiteral
	}

	return n, nil
}

// parseObjectLiteral deserializes a flat {key: value} option bag.
// Keys are bare identifiers; values are numbers, quoted strings, bare
// identifiers (read as strings) or flat [a, b] lists of those.
func parseObjectLiteral(src string) (objectLit, error) {
	p := &litParser{src: strings.TrimSpace(src)}
	if err := p.expect('{'); err != nil {
		return nil, err
	}

	out := make(objectLit)
	p.skipSpace()
	if p.peek() == '}' { // empty bag is legal: all options default
		p.pos++

		return out, p.expectEnd()
	}

	for {
		key, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if err = p.expect(':'); err != nil {
			return nil, err
		}
		val, err := p.parseLitValue()
		if err != nil {
			return nil, err
		}
		out[key] = val

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++

			return out, p.expectEnd()
		default:
			return nil, fmt.Errorf("position %d: expected ',' or '}': %w", p.pos, ErrObjectLiteral)
		}
	}
}

// expectEnd fails when trailing non-space input remains.
func (p *litParser) expectEnd() error {
	p.skipSpace()
	if p.pos != len(p.src) {
		return fmt.Errorf("position %d: trailing input: %w", p.pos, ErrObjectLiteral)
	}

	return nil
}

// parseIdent consumes a bare identifier.
func (p *litParser) parseIdent() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			p.pos++

			continue
		}

		break
	}
	if start == p.pos {
		return "", fmt.Errorf("position %d: expected identifier: %w", p.pos, ErrObjectLiteral)
	}

	return p.src[start:p.pos], nil
}

// parseQuoted consumes a double-quoted string (no escape sequences: option
// bags never need them).
func (p *litParser) parseQuoted() (string, error) {
	p.pos++ // opening quote
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("unterminated string: %w", ErrObjectLiteral)
	}
	s := p.src[start:p.pos]
	p.pos++ // closing quote

	return s, nil
}

// parseLitValue consumes one object-literal value.
func (p *litParser) parseLitValue() (litValue, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '"':
		s, err := p.parseQuoted()
		if err != nil {
			return litValue{}, err
		}

		return litValue{kind: litString, str: s}, nil

	case c == '[':
		p.pos++
		var list []string
		for {
			p.skipSpace()
			if p.peek() == ']' && len(list) == 0 {
				p.pos++ // empty list

				return litValue{kind: litList}, nil
			}
			item, err := p.parseListItem()
			if err != nil {
				return litValue{}, err
			}
			list = append(list, item)

			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
			case ']':
				p.pos++

				return litValue{kind: litList, list: list}, nil
			default:
				return litValue{}, fmt.Errorf("position %d: expected ',' or ']': %w", p.pos, ErrObjectLiteral)
			}
		}

	case c == '-' || (c >= '0' && c <= '9'):
		start := p.pos
		n, err := p.parseNumber()
		if err != nil {
			return litValue{}, fmt.Errorf("position %d: bad number: %w", start, ErrObjectLiteral)
		}

		return litValue{kind: litNumber, num: n}, nil

	default:
		s, err := p.parseIdent() // bare identifier reads as a string
		if err != nil {
			return litValue{}, err
		}

		return litValue{kind: litString, str: s}, nil
	}
}

// parseListItem consumes one list element: quoted string or bare identifier.
func (p *litParser) parseListItem() (string, error) {
	p.skipSpace()
	if p.peek() == '"' {
		return p.parseQuoted()
	}

	return p.parseIdent()
}

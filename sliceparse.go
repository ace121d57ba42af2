// Package sliceparse is a small parser combinator library for parsing
// in-memory slices of any element type: bytes, runes, lexed tokens, or
// anything else.
//
// A parser is any parser.ParserFunc: a function that takes a view of the
// input and returns a parser.Result holding either a value and the unconsumed
// suffix of the input, or an error. The error type is chosen by the caller;
// the primitives in package match use the detail-free match.NoMatch.
//
// Parsers are built once by combining smaller parsers and may then be run any
// number of times, from any number of goroutines:
//
//	sign := parser.Optional(match.String("-"))
//	digits := match.N(1, 10, match.InRange('0', '9'))
//	number := parser.Then(sign, digits)
//
//	n, rest, err := sliceparse.Parse(number, []rune("-42abc"))
//
// Parsing never copies the input. Every remainder and every captured value is
// a re-slice of the input given to Parse. Sequencing does not backtrack; only
// parser.Optional, match.First, and match.Longest restart from an earlier
// view.
package sliceparse

import (
	"fmt"

	"github.com/zostay/sliceparse/parser"
)

// ParseError is returned by Parse and ParseAll when the parser fails. Err is
// the failure value reported by the parser.
type ParseError[E any] struct {
	Err E
}

// Error describes the failure.
func (e *ParseError[E]) Error() string {
	if err, isErr := any(e.Err).(error); isErr {
		return fmt.Sprintf("parse failed: %v", err)
	}
	return fmt.Sprintf("parse failed: %v", e.Err)
}

// Unwrap returns Err if it is an error, so errors.Is and errors.As can see
// through a ParseError.
func (e *ParseError[E]) Unwrap() error {
	if err, isErr := any(e.Err).(error); isErr {
		return err
	}
	return nil
}

// IncompleteError is returned by ParseAll when the parser succeeded without
// consuming all of the input.
type IncompleteError[S any] struct {
	Offset int // the number of elements consumed
	Rest   []S // the input left over
}

// Error describes where the parse stopped.
func (e *IncompleteError[S]) Error() string {
	return fmt.Sprintf("unconsumed input at offset %d (%d elements left)", e.Offset, len(e.Rest))
}

// Parse runs p against input. On success it returns the value and the
// unconsumed remainder. A non-empty remainder is not an error; use ParseAll
// to require that all input is consumed. On failure, the error is a
// *ParseError[E].
func Parse[S, T, E any](p parser.ParserFunc[S, T, E], input []S) (T, []S, error) {
	r := p(input)
	if !r.OK() {
		var none T
		return none, nil, &ParseError[E]{Err: r.Err}
	}

	return r.Value, r.Rest, nil
}

// ParseAll runs p against input and requires that p consume all of it. If
// input remains, an *IncompleteError[S] is returned.
func ParseAll[S, T, E any](p parser.ParserFunc[S, T, E], input []S) (T, error) {
	v, rest, err := Parse(p, input)
	if err != nil {
		return v, err
	}

	if len(rest) > 0 {
		var none T
		return none, &IncompleteError[S]{
			Offset: len(input) - len(rest),
			Rest:   rest,
		}
	}

	return v, nil
}

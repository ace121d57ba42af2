package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/sliceparse/parser"
)

// NoMatch is the failure reported by the matchers in this package. It carries
// no detail; use parser.MapErr to attach a position or message.
type NoMatch struct{}

// Error returns "no match".
func (NoMatch) Error() string {
	return "no match"
}

// Literal returns a parser that succeeds when the input starts with the
// elements of pattern. The value returned is that prefix of the input, and
// exactly len(pattern) elements are consumed. An empty pattern always matches
// and consumes nothing.
func Literal[S comparable](pattern []S) parser.ParserFunc[S, []S, NoMatch] {
	return func(input []S) parser.Result[S, []S, NoMatch] {
		n := len(pattern)
		if n > len(input) {
			return parser.Failure[S, []S](NoMatch{})
		}

		for i, c := range pattern {
			if input[i] != c {
				return parser.Failure[S, []S](NoMatch{})
			}
		}

		return parser.Success[S, []S, NoMatch](input[:n:n], input[n:])
	}
}

// Literals returns a parser that matches the first of the given patterns that
// the input starts with. Put longer patterns first when one is a prefix of
// another.
func Literals[S comparable](patterns ...[]S) parser.ParserFunc[S, []S, NoMatch] {
	return First(slices.Map(patterns, Literal[S])...)
}

// String returns a Literal matching the runes of s.
func String(s string) parser.ParserFunc[rune, []rune, NoMatch] {
	return Literal([]rune(s))
}

// Bytes returns a Literal matching the bytes of s.
func Bytes(s string) parser.ParserFunc[byte, []byte, NoMatch] {
	return Literal([]byte(s))
}

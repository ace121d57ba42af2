package match

import (
	"github.com/zostay/sliceparse/parser"
)

// First returns a parser that will try each parser against the same input and
// immediately returns on the first one that succeeds. If none succeed, the
// error of the last one tried is returned. With no parsers given, it fails
// with the zero value of E.
func First[S, T, E any](ps ...parser.ParserFunc[S, T, E]) parser.ParserFunc[S, T, E] {
	return func(input []S) parser.Result[S, T, E] {
		var last parser.Result[S, T, E]
		for _, p := range ps {
			last = p(input)
			if last.OK() {
				return last
			}
		}

		return last
	}
}

// Longest returns a parser that tries all the given parsers against the same
// input. It keeps the result that consumed the most input and discards the
// rest. Ties go to the earlier parser. If none succeed, the error of the last
// one is returned.
func Longest[S, T, E any](ps ...parser.ParserFunc[S, T, E]) parser.ParserFunc[S, T, E] {
	return func(input []S) parser.Result[S, T, E] {
		var (
			best parser.Result[S, T, E]
			last parser.Result[S, T, E]
		)

		for _, p := range ps {
			last = p(input)
			if !last.OK() {
				continue
			}

			if !best.OK() || len(last.Rest) < len(best.Rest) {
				best = last
			}
		}

		if best.OK() {
			return best
		}

		return last
	}
}

// Many returns a parser that matches p as many times as possible one after
// another on the input. It stops at the first failure of p, or when p succeeds
// without consuming anything. If the number of matches is fewer than min, it
// fails with the error from the last attempt, or with the zero value of E if
// p stopped consuming input.
func Many[S, T, E any](min int, p parser.ParserFunc[S, T, E]) parser.ParserFunc[S, []T, E] {
	return func(input []S) parser.Result[S, []T, E] {
		vs := make([]T, 0, min)
		rest := input
		for {
			r := p(rest)
			if !r.OK() {
				if len(vs) < min {
					return parser.Failure[S, []T](r.Err)
				}
				break
			}

			vs = append(vs, r.Value)
			if len(r.Rest) == len(rest) {
				rest = r.Rest
				break
			}
			rest = r.Rest
		}

		if len(vs) < min {
			var none E
			return parser.Failure[S, []T](none)
		}

		return parser.Success[S, []T, E](vs, rest)
	}
}

// ManyWithSep returns a parser that matches mtch against the input provided
// that the separator sep matches in between. The separator values are
// dropped. A separator that is not followed by another match is not consumed.
// If fewer than min matches are present, the parse fails.
func ManyWithSep[S, T, U, E any](
	min int,
	mtch parser.ParserFunc[S, T, E],
	sep parser.ParserFunc[S, U, E],
) parser.ParserFunc[S, []T, E] {
	next := parser.ThenRight(sep, mtch)
	return func(input []S) parser.Result[S, []T, E] {
		vs := make([]T, 0, min)

		first := mtch(input)
		if !first.OK() {
			if min > 0 {
				return parser.Failure[S, []T](first.Err)
			}
			return parser.Success[S, []T, E](vs, input)
		}

		vs = append(vs, first.Value)
		rest := first.Rest
		for {
			r := next(rest)
			if !r.OK() {
				if len(vs) < min {
					return parser.Failure[S, []T](r.Err)
				}
				break
			}

			vs = append(vs, r.Value)
			if len(r.Rest) == len(rest) {
				rest = r.Rest
				break
			}
			rest = r.Rest
		}

		if len(vs) < min {
			var none E
			return parser.Failure[S, []T](none)
		}

		return parser.Success[S, []T, E](vs, rest)
	}
}

// Seq returns a parser that applies each parser in turn, each starting where
// the previous one stopped. It fails immediately with the error of the first
// parser in the sequence that fails. Returns the values of every parser when
// all succeed.
func Seq[S, T, E any](ps ...parser.ParserFunc[S, T, E]) parser.ParserFunc[S, []T, E] {
	return func(input []S) parser.Result[S, []T, E] {
		vs := make([]T, len(ps))
		rest := input
		for i, p := range ps {
			r := p(rest)
			if !r.OK() {
				return parser.Failure[S, []T](r.Err)
			}

			vs[i] = r.Value
			rest = r.Rest
		}

		return parser.Success[S, []T, E](vs, rest)
	}
}

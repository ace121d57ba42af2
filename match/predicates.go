package match

import (
	"cmp"

	"github.com/zostay/sliceparse/parser"
	"github.com/zostay/sliceparse/token"
)

// Predicate is a function that returns true if it matches a single element or
// false if it does not.
type Predicate[S any] func(c S) bool

// InSet creates a Predicate from the set of elements given.
func InSet[S comparable](cs ...S) Predicate[S] {
	return func(s S) bool {
		for _, c := range cs {
			if c == s {
				return true
			}
		}
		return false
	}
}

// InRange creates a Predicate that matches any element in the given range. The
// match is inclusive so elements equal to either end point are also matched.
func InRange[S cmp.Ordered](cs, ce S) Predicate[S] {
	return func(s S) bool {
		return s >= cs && s <= ce
	}
}

// AnyOf creates a combined Predicate that matches an element that matches any
// of the given predicates.
func AnyOf[S any](preds ...Predicate[S]) Predicate[S] {
	switch len(preds) {
	case 0:
		return func(S) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(s S) bool {
			for _, pred := range preds {
				if pred(s) {
					return true
				}
			}
			return false
		}
	}
}

// Not creates a combined Predicate that matches an element that does not match
// any of the given predicates.
func Not[S any](preds ...Predicate[S]) Predicate[S] {
	return func(s S) bool {
		for _, pred := range preds {
			if pred(s) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThat creates a combined Predicate that matches an element that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThat[S any](this, that Predicate[S]) Predicate[S] {
	return func(s S) bool {
		return this(s) && !that(s)
	}
}

// One returns a parser that matches exactly one element if the next element in
// the input matches any of the given predicates. The value is the matched
// element.
func One[S any](preds ...Predicate[S]) parser.ParserFunc[S, S, NoMatch] {
	pred := AnyOf(preds...)
	return func(input []S) parser.Result[S, S, NoMatch] {
		if len(input) == 0 || !pred(input[0]) {
			return parser.Failure[S, S](NoMatch{})
		}

		return parser.Success[S, S, NoMatch](input[0], input[1:])
	}
}

// N returns a parser that matches at least from and at most to elements that
// each match any of the given predicates. The value is the matched prefix of
// the input. Fewer than from matching elements is a failure.
func N[S any](from, to int, preds ...Predicate[S]) parser.ParserFunc[S, []S, NoMatch] {
	pred := AnyOf(preds...)
	return func(input []S) parser.Result[S, []S, NoMatch] {
		n := 0
		for n < to && n < len(input) && pred(input[n]) {
			n++
		}

		if n < from {
			return parser.Failure[S, []S](NoMatch{})
		}

		return parser.Success[S, []S, NoMatch](input[:n:n], input[n:])
	}
}

// Tagged returns a parser that matches a single token with any of the given
// tags.
func Tagged(ts ...token.Tag) parser.ParserFunc[token.Token, token.Token, NoMatch] {
	tags := InSet(ts...)
	return One[token.Token](func(t token.Token) bool {
		return tags(t.Tag)
	})
}

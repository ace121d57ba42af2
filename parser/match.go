package parser

import "github.com/zostay/sliceparse/token"

// Match is the object used to represent some segment of parsed input. Content
// is a view into the original input, never a copy.
type Match[S, T any] struct {
	Tag     token.Tag // an identifier describing what the match represents
	Content []S       // the consumed prefix of the input
	Made    T         // the value the captured parser produced
}

// Length returns the number of elements matched for this match.
func (m *Match[S, T]) Length() int {
	if m != nil {
		return len(m.Content)
	} else {
		return 0
	}
}

// Capture returns a parser that runs p and records exactly which prefix of
// the input p consumed, tagged with t.
func Capture[S, T, E any](t token.Tag, p ParserFunc[S, T, E]) ParserFunc[S, Match[S, T], E] {
	return func(input []S) Result[S, Match[S, T], E] {
		r := p(input)
		if !r.ok {
			return Failure[S, Match[S, T]](r.Err)
		}

		n := len(input) - len(r.Rest)
		return Success[S, Match[S, T], E](Match[S, T]{
			Tag:     t,
			Content: input[:n:n],
			Made:    r.Value,
		}, r.Rest)
	}
}

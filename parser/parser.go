package parser

// Parser is the contract every parser satisfies. Parse consumes some prefix of
// the input and reports either a value with the unconsumed suffix, or a
// failure carrying an error of type E.
//
// A Parser must not modify input. On success, Rest must be a suffix of input
// (a re-slice of it, never a copy). Calling Parse twice on the same input must
// yield the same Result, so parsers may be shared between goroutines.
type Parser[S, T, E any] interface {
	Parse(input []S) Result[S, T, E]
}

// ParserFunc is the type for parsing functions. Any function taking the input
// view and returning a Result is a Parser through this type. All the
// combinators accept and return ParserFunc so that closures and method values
// (such as x.Parse of a named Parser) compose without conversion.
type ParserFunc[S, T, E any] func(input []S) Result[S, T, E]

// Parse calls the function.
func (pfun ParserFunc[S, T, E]) Parse(input []S) Result[S, T, E] {
	return pfun(input)
}

// Func adapts a plain function to a ParserFunc. It exists for the cases where
// type inference needs a nudge, e.g., when storing a method value in a
// variable.
func Func[S, T, E any](f func(input []S) Result[S, T, E]) ParserFunc[S, T, E] {
	return f
}

// Result is the outcome of a single call to Parse.
type Result[S, T, E any] struct {
	Value T   // the semantic value, meaningful only on success
	Rest  []S // the unconsumed suffix of input, meaningful only on success
	Err   E   // the failure, meaningful only when OK returns false

	ok bool
}

// Success builds a successful Result.
func Success[S, T, E any](value T, rest []S) Result[S, T, E] {
	return Result[S, T, E]{Value: value, Rest: rest, ok: true}
}

// Failure builds a failed Result.
func Failure[S, T, E any](err E) Result[S, T, E] {
	return Result[S, T, E]{Err: err}
}

// OK returns true if the parse succeeded.
func (r Result[S, T, E]) OK() bool {
	return r.ok
}

// Get returns the fields of the result as multiple values, which is handy for
// callers that prefer the usual Go shape.
func (r Result[S, T, E]) Get() (T, []S, E, bool) {
	return r.Value, r.Rest, r.Err, r.ok
}

// Consumed returns the number of elements consumed when a parse of input left
// rest behind. If rest is not a suffix of input, it returns -1.
func Consumed[S any](input, rest []S) int {
	n := len(input) - len(rest)
	if n < 0 {
		return -1
	}

	// empty suffixes are always suffixes
	if len(rest) == 0 {
		return n
	}

	if &input[n] != &rest[0] {
		return -1
	}

	return n
}

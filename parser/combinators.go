package parser

// Pair holds the values of both sides of a Then.
type Pair[T, U any] struct {
	Left  T
	Right U
}

// Maybe is the value produced by Optional. Present is false when the wrapped
// parser failed, in which case Value is the zero value.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Pure returns a parser that always succeeds with v and consumes nothing.
func Pure[S, T, E any](v T) ParserFunc[S, T, E] {
	return func(input []S) Result[S, T, E] {
		return Success[S, T, E](v, input)
	}
}

// Map returns a parser that runs p and transforms its value with f. The
// remaining input is left as p returned it. Failures of p are returned
// unchanged.
func Map[S, T, U, E any](
	p ParserFunc[S, T, E],
	f func(T) U,
) ParserFunc[S, U, E] {
	return func(input []S) Result[S, U, E] {
		r := p(input)
		if !r.ok {
			return Failure[S, U](r.Err)
		}

		return Success[S, U, E](f(r.Value), r.Rest)
	}
}

// FlatMap returns a parser that runs p, passes its value to f to select the
// next parser, and runs that parser on whatever p left behind. This allows
// context sensitive parsing, such as reading a length and then that many
// elements.
func FlatMap[S, T, U, E any](
	p ParserFunc[S, T, E],
	f func(T) ParserFunc[S, U, E],
) ParserFunc[S, U, E] {
	return func(input []S) Result[S, U, E] {
		r := p(input)
		if !r.ok {
			return Failure[S, U](r.Err)
		}

		return f(r.Value)(r.Rest)
	}
}

// Optional returns a parser that never fails. If p matches, its value is
// returned as present. If p fails, the error is discarded and an absent Maybe
// is returned along with the original input, so nothing is consumed.
func Optional[S, T, E any](p ParserFunc[S, T, E]) ParserFunc[S, Maybe[T], E] {
	return func(input []S) Result[S, Maybe[T], E] {
		r := p(input)
		if !r.ok {
			return Success[S, Maybe[T], E](Maybe[T]{}, input)
		}

		return Success[S, Maybe[T], E](Maybe[T]{Value: r.Value, Present: true}, r.Rest)
	}
}

// Then returns a parser that runs p and then q on p's remainder, returning
// both values. If p fails, q is never tried. If q fails, its error is
// returned; the combination is not atomic, so the caller simply gets the
// failure and keeps its own view of the input.
func Then[S, T, U, E any](
	p ParserFunc[S, T, E],
	q ParserFunc[S, U, E],
) ParserFunc[S, Pair[T, U], E] {
	return func(input []S) Result[S, Pair[T, U], E] {
		l := p(input)
		if !l.ok {
			return Failure[S, Pair[T, U]](l.Err)
		}

		r := q(l.Rest)
		if !r.ok {
			return Failure[S, Pair[T, U]](r.Err)
		}

		return Success[S, Pair[T, U], E](Pair[T, U]{Left: l.Value, Right: r.Value}, r.Rest)
	}
}

// ThenRight works like Then, but keeps only q's value.
func ThenRight[S, T, U, E any](
	p ParserFunc[S, T, E],
	q ParserFunc[S, U, E],
) ParserFunc[S, U, E] {
	return func(input []S) Result[S, U, E] {
		l := p(input)
		if !l.ok {
			return Failure[S, U](l.Err)
		}

		return q(l.Rest)
	}
}

// ThenLeft works like Then, but keeps only p's value.
func ThenLeft[S, T, U, E any](
	p ParserFunc[S, T, E],
	q ParserFunc[S, U, E],
) ParserFunc[S, T, E] {
	return func(input []S) Result[S, T, E] {
		l := p(input)
		if !l.ok {
			return l
		}

		r := q(l.Rest)
		if !r.ok {
			return Failure[S, T](r.Err)
		}

		return Success[S, T, E](l.Value, r.Rest)
	}
}

// MapErr returns a parser that runs p and converts any failure with f. The
// function is given the input view p was started on, which lets callers
// attach a position to an error that has none.
func MapErr[S, T, E, F any](
	p ParserFunc[S, T, E],
	f func(input []S, err E) F,
) ParserFunc[S, T, F] {
	return func(input []S) Result[S, T, F] {
		r := p(input)
		if !r.ok {
			return Failure[S, T](f(input, r.Err))
		}

		return Success[S, T, F](r.Value, r.Rest)
	}
}

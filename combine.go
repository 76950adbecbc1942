package combinator

// Optional turns failure of c into data: a match yields Some of its value
// at the advanced position, a mismatch yields None at the original
// position. The returned combinator never fails.
func Optional[Tok, T any](c Combinator[Tok, T]) Combinator[Tok, Option[T]] {
	return Combinator[Tok, Option[T]]{run: func(cur Cursor[Tok]) (Option[T], Cursor[Tok], error) {
		v, next, err := c.run(cur)
		if err != nil {
			return None[T](), cur, nil
		}

		return Some(v), next, nil
	}}
}

// Seq applies parsers left to right, threading the position through each
// match, and fails as soon as one element fails. The element results are
// concatenated into the natural shape of the whole: unit for nothing, the
// bare value for a single carrier, a flat Tuple otherwise. Units vanish
// and nested sequences flatten, so how a grammar is grouped does not show
// in its data.
func Seq[Tok any](parsers ...Parser[Tok]) Combinator[Tok, any] {
	return Combinator[Tok, any]{run: func(cur Cursor[Tok]) (any, Cursor[Tok], error) {
		parts := make(Tuple, 0, len(parsers))

		for _, p := range parsers {
			v, next, err := p.parse(cur)
			if err != nil {
				return nil, nil, err
			}

			parts = append(parts, packTuple(v)...)
			cur = next
		}

		return collapseTuple(parts), cur, nil
	}}
}

// Or tries each alternative at the same position and returns the first
// success verbatim; later alternatives are not attempted. It fails with
// ErrNotMatch only when every alternative fails, and with no alternatives
// at all it is the combinator that never matches. All alternatives share
// one data type; use Untyped before alternating structurally different
// rules.
func Or[Tok, T any](alternatives ...Combinator[Tok, T]) Combinator[Tok, T] {
	return Combinator[Tok, T]{run: func(cur Cursor[Tok]) (T, Cursor[Tok], error) {
		for _, alt := range alternatives {
			v, next, err := alt.run(cur)
			if err == nil {
				return v, next, nil
			}
		}

		var zero T

		return zero, nil, ErrNotMatch
	}}
}

// ZeroOrMore applies c greedily, collecting each value in match order, and
// stops at the first failure. It always succeeds: if c fails immediately
// the collection is empty and the position unchanged. c must consume input
// when it matches; a rule that succeeds without advancing would match
// forever.
func ZeroOrMore[Tok, T any](c Combinator[Tok, T]) Combinator[Tok, []T] {
	return Combinator[Tok, []T]{run: func(cur Cursor[Tok]) ([]T, Cursor[Tok], error) {
		collected := make([]T, 0)

		for {
			v, next, err := c.run(cur)
			if err != nil {
				return collected, cur, nil
			}

			collected = append(collected, v)
			cur = next
		}
	}}
}

// OneOrMore is ZeroOrMore with a non-empty requirement: it fails with
// ErrNotMatch when c does not match even once.
func OneOrMore[Tok, T any](c Combinator[Tok, T]) Combinator[Tok, []T] {
	rep := ZeroOrMore(c)

	return Combinator[Tok, []T]{run: func(cur Cursor[Tok]) ([]T, Cursor[Tok], error) {
		collected, next, _ := rep.run(cur)
		if len(collected) == 0 {
			return nil, nil, ErrNotMatch
		}

		return collected, next, nil
	}}
}

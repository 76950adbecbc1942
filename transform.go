package combinator

// Mapper reshapes a combinator's result. The flattened result is unpacked
// into positional arguments, one per tuple element (a bare value is one
// argument, the unit value none). A nil error makes the returned value the
// new result, collapsed by the arity rule when it is a Tuple; a non-nil
// error rejects the match and fails the enclosing Transform. A mapper that
// never returns an error is a plain reshaping; one that sometimes does is
// a semantic check.
type Mapper func(args ...any) (any, error)

// Transform applies m to the result of p. A failure of p propagates
// unchanged; a rejection by m fails the combinator the same way, with p's
// consumption discarded.
func Transform[Tok any](p Parser[Tok], m Mapper) Combinator[Tok, any] {
	return Combinator[Tok, any]{run: func(cur Cursor[Tok]) (any, Cursor[Tok], error) {
		v, next, err := p.parse(cur)
		if err != nil {
			return nil, nil, err
		}

		out, err := m(packTuple(v)...)
		if err != nil {
			return nil, nil, err
		}

		return collapseValue(out), next, nil
	}}
}

// Map applies fn to the data of c, keeping the match itself intact. It is
// the typed shortcut for transforms that cannot reject.
func Map[Tok, T, U any](c Combinator[Tok, T], fn func(T) U) Combinator[Tok, U] {
	return Combinator[Tok, U]{run: func(cur Cursor[Tok]) (U, Cursor[Tok], error) {
		v, next, err := c.run(cur)
		if err != nil {
			var zero U

			return zero, nil, err
		}

		return fn(v), next, nil
	}}
}

// TryMap applies fn to the data of c; an error from fn rejects the match
// and fails the combinator with that error.
func TryMap[Tok, T, U any](c Combinator[Tok, T], fn func(T) (U, error)) Combinator[Tok, U] {
	return Combinator[Tok, U]{run: func(cur Cursor[Tok]) (U, Cursor[Tok], error) {
		v, next, err := c.run(cur)
		if err != nil {
			var zero U

			return zero, nil, err
		}

		u, err := fn(v)
		if err != nil {
			var zero U

			return zero, nil, err
		}

		return u, next, nil
	}}
}

// Filter returns a mapper that passes its arguments through untouched when
// pred holds and rejects the match with ErrNotMatch otherwise.
func Filter(pred func(args ...any) bool) Mapper {
	return func(args ...any) (any, error) {
		if !pred(args...) {
			return nil, ErrNotMatch
		}

		return Tuple(args), nil
	}
}

// Select returns a mapper that projects its arguments down to the given
// zero-based positions, in the order listed. Indices may repeat or
// reorder; none at all yields the unit value. An index past the argument
// list panics: that is a mistyped grammar, not an input mismatch.
func Select(indices ...int) Mapper {
	return func(args ...any) (any, error) {
		picked := make(Tuple, 0, len(indices))
		for _, index := range indices {
			picked = append(picked, args[index])
		}

		return picked, nil
	}
}

// Drop keeps the consumption of p but discards its data, collapsing the
// result to the unit value so it vanishes from an enclosing Seq.
func Drop[Tok any](p Parser[Tok]) Combinator[Tok, Tuple] {
	return Combinator[Tok, Tuple]{run: func(cur Cursor[Tok]) (Tuple, Cursor[Tok], error) {
		_, next, err := p.parse(cur)
		if err != nil {
			return nil, nil, err
		}

		return Tuple{}, next, nil
	}}
}

// FoldLeft returns a mapper for the (initial, elements) pair produced by a
// "seed then repetition" sequence, combining left to right:
// folder(folder(folder(initial, e0), e1), …). With no elements the initial
// value passes through. The two arguments must be an A and a []B; anything
// else panics as a mistyped grammar.
func FoldLeft[A, B any](folder func(acc A, item B) A) Mapper {
	return func(args ...any) (any, error) {
		acc := args[0].(A)
		for _, item := range args[1].([]B) {
			acc = folder(acc, item)
		}

		return acc, nil
	}
}

// FoldRight returns a mapper for the mirrored (elements, initial) pair,
// combining right to left: folder(e0, folder(e1, folder(…, initial))).
// The two arguments must be a []B and an A.
func FoldRight[A, B any](folder func(item B, acc A) A) Mapper {
	return func(args ...any) (any, error) {
		items := args[0].([]B)

		acc := args[1].(A)
		for i := len(items) - 1; i >= 0; i-- {
			acc = folder(items[i], acc)
		}

		return acc, nil
	}
}

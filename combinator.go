package combinator

// ParseFunc is the bare evaluation shape of a combinator over Tok tokens
// producing T: applied to a position it either succeeds with a value and
// the position just past the match, or fails with an error and a nil
// position.
type ParseFunc[Tok, T any] func(Cursor[Tok]) (T, Cursor[Tok], error)

// Combinator is a parsing rule: a pure function from a position to a
// result, tagged with its token and data types. Combinators are plain
// values. Compose them once up front, then evaluate the composite any
// number of times, from any number of goroutines.
//
// Only this package's constructors and Wrap produce a Combinator, so an
// API that asks for one is asking for combinator semantics, not for an
// arbitrary function that happens to have the right shape.
type Combinator[Tok, T any] struct {
	run ParseFunc[Tok, T]
}

// Parser is the type-erased view of a Combinator, used where rules with
// different data types meet, such as Seq and Transform. It is satisfied
// only by Combinator values.
type Parser[Tok any] interface {
	parse(cur Cursor[Tok]) (any, Cursor[Tok], error)
}

// Wrap turns a hand-written parse function into a Combinator. It is also
// the way to tie a recursive grammar: a rule that refers to itself does so
// through a function, so the value graph stays acyclic.
func Wrap[Tok, T any](fn ParseFunc[Tok, T]) Combinator[Tok, T] {
	return Combinator[Tok, T]{run: fn}
}

// Parse evaluates the combinator at cur. On success err is nil, the value
// holds the parsed data and the returned cursor sits just past the match;
// on failure the value is the zero value and the cursor is nil.
func (c Combinator[Tok, T]) Parse(cur Cursor[Tok]) (T, Cursor[Tok], error) {
	return c.run(cur)
}

// Func returns the bare evaluation function. Wrap(c.Func()) evaluates
// identically to c.
func (c Combinator[Tok, T]) Func() ParseFunc[Tok, T] {
	return c.run
}

func (c Combinator[Tok, T]) parse(cur Cursor[Tok]) (any, Cursor[Tok], error) {
	v, next, err := c.run(cur)
	if err != nil {
		return nil, nil, err
	}

	return v, next, nil
}

// Optional wraps c so it always succeeds, as the package-level Optional
// does, with the Option[T] result boxed as any: a method returning
// Combinator[Tok, Option[T]] would re-instantiate the receiver's type with
// an ever-growing argument, which Go rejects as an instantiation cycle.
// Use the package-level Optional where the typed result matters.
func (c Combinator[Tok, T]) Optional() Combinator[Tok, any] {
	return Combinator[Tok, any]{run: func(cur Cursor[Tok]) (any, Cursor[Tok], error) {
		v, next, err := c.run(cur)
		if err != nil {
			return None[T](), cur, nil
		}

		return Some(v), next, nil
	}}
}

// Then sequences c with next, as Seq does.
func (c Combinator[Tok, T]) Then(next Parser[Tok]) Combinator[Tok, any] {
	return Seq[Tok](c, next)
}

// Or tries c and falls back to alt at the same position, as the
// package-level Or does.
func (c Combinator[Tok, T]) Or(alt Combinator[Tok, T]) Combinator[Tok, T] {
	return Or(c, alt)
}

// Transform applies m to the result of c, as the package-level Transform
// does.
func (c Combinator[Tok, T]) Transform(m Mapper) Combinator[Tok, any] {
	return Transform[Tok](c, m)
}

// As re-types the data of p as U. It is the typed exit from erased
// compositions such as Seq and Transform. A successful parse whose value
// is not a U panics: that is a mistyped grammar, not an input mismatch.
func As[U, Tok any](p Parser[Tok]) Combinator[Tok, U] {
	return Combinator[Tok, U]{run: func(cur Cursor[Tok]) (U, Cursor[Tok], error) {
		v, next, err := p.parse(cur)
		if err != nil {
			var zero U

			return zero, nil, err
		}

		return v.(U), next, nil
	}}
}

// Untyped erases the data type of p to any, letting rules with different
// data types share an alternation.
func Untyped[Tok any](p Parser[Tok]) Combinator[Tok, any] {
	return Combinator[Tok, any]{run: p.parse}
}

package combinator

// Option carries the outcome of an Optional combinator as data: Valid
// reports whether the wrapped combinator matched, and Value holds its
// result when it did.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Package combinator provides small typed parser combinators that compose
// into recursive-descent parsers over any token type.
//
// A Combinator[Tok, T] is a value describing how to parse a T out of a
// stream of Tok, evaluated at an immutable Cursor position. Two primitives
// start every grammar: Succeed matches nothing and One matches any single
// token. Everything else is built by composition. Optional makes failure
// into data, Seq runs rules in order, Or picks the first matching
// alternative, ZeroOrMore and OneOrMore repeat greedily, and Transform
// reshapes or rejects results through a Mapper such as Filter, Select,
// FoldLeft or FoldRight.
//
// Sequencing flattens: the unit value vanishes, a lone value stays bare,
// and longer runs concatenate into a flat Tuple, so regrouping a grammar
// never changes the shape of its output. Failure is an error value
// (ErrNotMatch for a plain mismatch) with no position attached; a failed
// alternative costs nothing and the next one is tried at the same cursor.
//
// Combinators are immutable once built. Compose a grammar at package init
// or construction time, then call Parse as often as needed, concurrently
// if needed. For recursive rules, wrap the reference in a function with
// Wrap so the definition can mention itself.
package combinator

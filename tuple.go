package combinator

// Tuple is the ordered heterogeneous record produced when two or more
// combinators are sequenced. The empty Tuple is the unit value: the data of
// a match that carries nothing, such as Succeed or a dropped delimiter.
//
// Tuples exist only at the top level of a result. Sequencing never nests
// them: concatenating (a, b) with (c) yields (a, b, c), a unit vanishes
// into its neighbors, and a single leftover element is unwrapped to the
// bare value. That keeps grouping irrelevant, so a grammar can be
// refactored without changing the shape of what it produces.
type Tuple []any

// packTuple lifts v into tuple form: a Tuple stays itself, anything else
// becomes a one-element Tuple.
func packTuple(v any) Tuple {
	if t, ok := v.(Tuple); ok {
		return t
	}

	return Tuple{v}
}

// collapseTuple applies the arity rule to t: a single element unwraps to
// the bare value, the empty Tuple stays the unit value, longer tuples are
// returned unchanged.
func collapseTuple(t Tuple) any {
	if len(t) == 1 {
		return t[0]
	}

	return t
}

// collapseValue collapses v when it is a Tuple and returns it unchanged
// otherwise.
func collapseValue(v any) any {
	if t, ok := v.(Tuple); ok {
		return collapseTuple(t)
	}

	return v
}

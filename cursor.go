package combinator

// Cursor is the position a combinator evaluates at: an immutable handle
// into a token sequence. Token reports the element under the cursor, with
// ok=false once the input is exhausted, and Next returns the position one
// element further on. Neither call may mutate the receiver or the
// underlying sequence; combinators rely on re-reading the same position
// after a failed alternative.
type Cursor[Tok any] interface {
	Token() (Tok, bool)
	Next() Cursor[Tok]
}

// SliceCursor is a Cursor over an in-memory token slice.
type SliceCursor[Tok any] struct {
	tokens []Tok
	index  int
}

// NewSliceCursor returns a cursor positioned at the first element of
// tokens.
func NewSliceCursor[Tok any](tokens []Tok) SliceCursor[Tok] {
	return SliceCursor[Tok]{tokens: tokens}
}

// NewStringCursor returns a cursor over the runes of s.
func NewStringCursor(s string) SliceCursor[rune] {
	return NewSliceCursor([]rune(s))
}

// Token implements Cursor.
func (c SliceCursor[Tok]) Token() (Tok, bool) {
	if c.index >= len(c.tokens) {
		var zero Tok

		return zero, false
	}

	return c.tokens[c.index], true
}

// Next implements Cursor.
func (c SliceCursor[Tok]) Next() Cursor[Tok] {
	return SliceCursor[Tok]{tokens: c.tokens, index: c.index + 1}
}

// Index returns the zero-based offset of the cursor within the slice.
func (c SliceCursor[Tok]) Index() int {
	return c.index
}

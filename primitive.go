package combinator

// Succeed returns the combinator that matches at every position, yielding
// the unit value without consuming anything. It is the identity element of
// Seq.
func Succeed[Tok any]() Combinator[Tok, Tuple] {
	return Combinator[Tok, Tuple]{run: func(cur Cursor[Tok]) (Tuple, Cursor[Tok], error) {
		return Tuple{}, cur, nil
	}}
}

// One returns the combinator that yields the token under the cursor and
// advances past it. At end of input it fails with ErrNotMatch.
func One[Tok any]() Combinator[Tok, Tok] {
	return Combinator[Tok, Tok]{run: func(cur Cursor[Tok]) (Tok, Cursor[Tok], error) {
		tok, ok := cur.Token()
		if !ok {
			var zero Tok

			return zero, nil, ErrNotMatch
		}

		return tok, cur.Next(), nil
	}}
}

// EOS returns the combinator that matches exactly at end of input, yielding
// the unit value without advancing. Sequencing a grammar with EOS turns
// "matches a prefix" into "matches the whole input".
func EOS[Tok any]() Combinator[Tok, Tuple] {
	return Combinator[Tok, Tuple]{run: func(cur Cursor[Tok]) (Tuple, Cursor[Tok], error) {
		if _, ok := cur.Token(); ok {
			return nil, nil, ErrNotMatch
		}

		return Tuple{}, cur, nil
	}}
}

package calc

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	cmb "github.com/shibukawa/combinator"
	tok "github.com/shibukawa/combinator/tokenizer"
)

func TestTokenOf(t *testing.T) {
	tokens := []tok.Token{
		{Type: tok.NUMBER, Value: "1"},
		{Type: tok.PLUS, Value: "+"},
	}

	v, next, err := tokenOf(tok.NUMBER).Parse(cmb.NewSliceCursor(tokens))
	assert.NoError(t, err)
	assert.Equal(t, "1", v.Value)

	// The next token is a PLUS, so NUMBER no longer matches there.
	_, _, err = tokenOf(tok.NUMBER).Parse(next)
	assert.IsError(t, err, cmb.ErrNotMatch)

	v, _, err = tokenOf(tok.PLUS).Parse(next)
	assert.NoError(t, err)
	assert.Equal(t, "+", v.Value)
}

func TestNumberConversion(t *testing.T) {
	// The tokenizer never emits such a literal, but the grammar still
	// rejects it cleanly when fed hand-built tokens.
	tokens := []tok.Token{{Type: tok.NUMBER, Value: "bogus"}}

	_, _, err := number.Parse(cmb.NewSliceCursor(tokens))
	assert.IsError(t, err, ErrInvalidNumber)
}

func TestScanTrimsEOF(t *testing.T) {
	tokens, err := scan("1 + 2 # note")
	assert.NoError(t, err)

	// Whitespace, comments and the EOF sentinel are gone; the grammar sees
	// payload tokens only.
	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, tok.NUMBER, tokens[0].Type)
	assert.Equal(t, tok.PLUS, tokens[1].Type)
	assert.Equal(t, tok.NUMBER, tokens[2].Type)
}

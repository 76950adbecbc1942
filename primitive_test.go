package combinator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSucceed(t *testing.T) {
	v, next, err := Succeed[int]().Parse(NewSliceCursor([]int{1, 2, 3}))
	assert.NoError(t, err)
	assert.Equal(t, Tuple{}, v)
	assert.Equal(t, 0, indexOf(t, next))

	// Matches at end of input too.
	v, _, err = Succeed[int]().Parse(NewSliceCursor([]int{}))
	assert.NoError(t, err)
	assert.Equal(t, Tuple{}, v)
}

func TestOne(t *testing.T) {
	one := One[int]()

	v, next, err := one.Parse(NewSliceCursor([]int{7, 8}))
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, indexOf(t, next))

	// Fails at end of input instead of reading past it.
	_, _, err = one.Parse(NewSliceCursor([]int{}))
	assert.IsError(t, err, ErrNotMatch)
}

func TestEOS(t *testing.T) {
	eos := EOS[int]()

	cur := NewSliceCursor([]int{1})
	_, _, err := eos.Parse(cur)
	assert.IsError(t, err, ErrNotMatch)

	v, next, err := eos.Parse(cur.Next())
	assert.NoError(t, err)
	assert.Equal(t, Tuple{}, v)
	assert.Equal(t, 1, indexOf(t, next))
}

func TestSucceedIsSeqIdentity(t *testing.T) {
	input := []int{9}
	bare, n1, err := One[int]().Parse(NewSliceCursor(input))
	assert.NoError(t, err)

	padded, n2, err := Seq[int](Succeed[int](), One[int](), Succeed[int]()).Parse(NewSliceCursor(input))
	assert.NoError(t, err)
	assert.Equal(t, any(bare), padded)
	assert.Equal(t, indexOf(t, n1), indexOf(t, n2))
}

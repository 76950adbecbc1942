package combinator

import "errors"

// Sentinel errors
var (
	// ErrNotMatch is the failure outcome of a combinator: the input at the
	// attempted position does not have the expected shape. It carries no
	// position and no partial value, so a caller that receives it learns
	// nothing beyond the fact of the mismatch.
	ErrNotMatch = errors.New("combinator does not match")
)

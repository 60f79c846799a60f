package chain

import "errors"

// Sentinel errors returned by the chain package. Callers should match with
// errors.Is; messages may be wrapped with fmt.Errorf for context.
var (
	// ErrDimensionMismatch indicates two chain-related slices (distribution,
	// seed, column) have incompatible lengths.
	ErrDimensionMismatch = errors.New("chain: dimension mismatch")

	// ErrColumnNotStochastic indicates a column's weights do not sum to 1
	// within ColumnEpsilon.
	ErrColumnNotStochastic = errors.New("chain: column does not sum to 1")

	// ErrNegativeWeight indicates a column entry is negative, NaN, or
	// infinite.
	ErrNegativeWeight = errors.New("chain: negative, NaN, or infinite weight")

	// ErrIndexOutOfRange indicates a column references a row index outside
	// [0, n).
	ErrIndexOutOfRange = errors.New("chain: row index out of range")

	// ErrInvalidAlpha indicates a teleport probability outside [0, 1].
	ErrInvalidAlpha = errors.New("chain: alpha must be in [0, 1]")

	// ErrEmptySelection indicates Indicator was called with a non-empty
	// selected set that shares no elements with order.
	ErrEmptySelection = errors.New("chain: selected set disjoint from order")
)

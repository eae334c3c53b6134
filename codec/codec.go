// Package codec converts between the bit-pattern encodings of a bounded set.
//
// Supported encodings:
//   - uint64: fixed-width word, only for universes of at most 64 elements
//   - *big.Int: arbitrary-precision, non-negative
//   - *bitset.BitSet: native multi-word bitset (github.com/bits-and-blooms/bitset)
//   - *roaring.Bitmap: compressed bitmap (github.com/RoaringBitmap/roaring/v2)
//   - []uint64: little-endian word slice, bit i of the pattern is bit i%64 of word i/64
//
// All conversions are pure. Negative or over-wide patterns are rejected with
// ErrMagnitudeTooLarge instead of being truncated or wrapped.
package codec

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrMagnitudeTooLarge is returned when a bit pattern is negative or wider than the target.
	ErrMagnitudeTooLarge = errors.New("magnitude too large")

	// ErrNilPattern is returned when a nil pattern is passed to a conversion.
	ErrNilPattern = errors.New("nil bit pattern")
)

// CheckWidth verifies that b is a non-negative pattern with no bit set at or above width.
func CheckWidth(b *big.Int, width int) error {
	if b == nil {
		return ErrNilPattern
	}
	if b.Sign() < 0 {
		return fmt.Errorf("%w: negative pattern %s", ErrMagnitudeTooLarge, b)
	}
	if b.BitLen() > width {
		return fmt.Errorf("%w: pattern needs %d bits, width is %d", ErrMagnitudeTooLarge, b.BitLen(), width)
	}
	return nil
}

// CheckUint64Width verifies that v has no bit set at or above width.
func CheckUint64Width(v uint64, width int) error {
	if width >= 64 {
		return nil
	}
	if v>>uint(width) != 0 {
		return fmt.Errorf("%w: pattern %#x exceeds width %d", ErrMagnitudeTooLarge, v, width)
	}
	return nil
}

package codec

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/domainset/internal/conv"
)

// RoaringFromBig converts b to a compressed bitmap.
// Roaring addresses at most 2^32 positions.
func RoaringFromBig(b *big.Int) (*roaring.Bitmap, error) {
	words, err := WordsFromBig(b)
	if err != nil {
		return nil, err
	}
	if uint64(len(words))*64 > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: pattern needs %d bits, roaring holds 2^32", ErrMagnitudeTooLarge, b.BitLen())
	}

	rb := roaring.New()
	for wi, w := range words {
		for w != 0 {
			pos, err := conv.PositionToUint32(wi*64 + bits.TrailingZeros64(w))
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMagnitudeTooLarge, err)
			}
			rb.Add(pos)
			w &= w - 1
		}
	}
	return rb, nil
}

// BigFromRoaring converts a compressed bitmap. A nil bitmap is the empty pattern.
func BigFromRoaring(rb *roaring.Bitmap) (*big.Int, error) {
	if rb == nil || rb.IsEmpty() {
		return new(big.Int), nil
	}

	words := make([]uint64, uint64(rb.Maximum())/64+1)
	it := rb.Iterator()
	for it.HasNext() {
		pos, err := conv.Uint32ToPosition(it.Next())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMagnitudeTooLarge, err)
		}
		words[pos/64] |= 1 << uint(pos%64)
	}
	return BigFromWords(words), nil
}

// CheckRoaringWidth verifies that rb has no position at or above width.
func CheckRoaringWidth(rb *roaring.Bitmap, width int) error {
	if rb == nil || rb.IsEmpty() {
		return nil
	}
	if uint64(rb.Maximum()) >= uint64(width) {
		return fmt.Errorf("%w: position %d set, width is %d", ErrMagnitudeTooLarge, rb.Maximum(), width)
	}
	return nil
}

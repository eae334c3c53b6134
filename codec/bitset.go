package codec

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/domainset/internal/conv"
)

// BitSetFromBig converts b to a native bitset.
func BitSetFromBig(b *big.Int) (*bitset.BitSet, error) {
	words, err := WordsFromBig(b)
	if err != nil {
		return nil, err
	}
	return bitset.From(words), nil
}

// BigFromBitSet converts a native bitset. A nil bitset is the empty pattern.
func BigFromBitSet(bs *bitset.BitSet) *big.Int {
	if bs == nil {
		return new(big.Int)
	}
	return BigFromWords(bs.Words())
}

// BitSetFromUint64 converts a fixed-width word.
func BitSetFromUint64(v uint64) *bitset.BitSet {
	return bitset.From([]uint64{v})
}

// Uint64FromBitSet narrows a bitset to 64 bits.
func Uint64FromBitSet(bs *bitset.BitSet) (uint64, error) {
	if err := CheckBitSetWidth(bs, 64); err != nil {
		return 0, err
	}
	if bs == nil {
		return 0, nil
	}
	words := bs.Words()
	if len(words) == 0 {
		return 0, nil
	}
	return words[0], nil
}

// CheckBitSetWidth verifies that bs has no bit set at or above width.
func CheckBitSetWidth(bs *bitset.BitSet, width int) error {
	if bs == nil {
		return nil
	}
	from, err := conv.PositionToUint(width)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMagnitudeTooLarge, err)
	}
	i, ok := bs.NextSet(from)
	if !ok {
		return nil
	}
	pos, err := conv.UintToPosition(i)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMagnitudeTooLarge, err)
	}
	return fmt.Errorf("%w: bit %d set, width is %d", ErrMagnitudeTooLarge, pos, width)
}

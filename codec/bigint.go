package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
)

// BigFromUint64 zero-extends v.
func BigFromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// Uint64FromBig narrows b to 64 bits.
func Uint64FromBig(b *big.Int) (uint64, error) {
	if err := CheckWidth(b, 64); err != nil {
		return 0, err
	}
	return b.Uint64(), nil
}

// WordsFromBig returns the little-endian word encoding of b.
// The zero pattern encodes as an empty slice.
func WordsFromBig(b *big.Int) ([]uint64, error) {
	if b == nil {
		return nil, ErrNilPattern
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative pattern %s", ErrMagnitudeTooLarge, b)
	}

	if bits.UintSize == 64 {
		ws := b.Bits()
		words := make([]uint64, len(ws))
		for i, w := range ws {
			words[i] = uint64(w)
		}
		return words, nil
	}

	buf := b.Bytes() // big-endian
	words := make([]uint64, (len(buf)+7)/8)
	for i := 0; i < len(buf); i++ {
		words[i/8] |= uint64(buf[len(buf)-1-i]) << (8 * uint(i%8))
	}
	return words, nil
}

// BigFromWords decodes a little-endian word slice.
func BigFromWords(words []uint64) *big.Int {
	buf := make([]byte, len(words)*8)
	for i, w := range words {
		binary.BigEndian.PutUint64(buf[len(buf)-8*(i+1):], w)
	}
	return new(big.Int).SetBytes(buf)
}

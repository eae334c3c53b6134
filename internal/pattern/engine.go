package pattern

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/domainset/codec"
)

// SmallLimit is the widest domain backed by a single word.
const SmallLimit = 64

// ErrTooManyElements is returned when a fixed-width operation is applied to a
// domain wider than SmallLimit.
var ErrTooManyElements = errors.New("too many elements")

// Kind identifies the engine variant.
type Kind uint8

const (
	// Small is the single-word engine.
	Small Kind = iota
	// General is the arbitrary-precision engine.
	General
)

func (k Kind) String() string {
	switch k {
	case Small:
		return "small"
	case General:
		return "general"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Engine is the bit pattern of one subset of a domain.
//
// Binary operations require both operands to have the same width.
type Engine interface {
	Kind() Kind
	// Width is the domain size.
	Width() int
	// Capacity is the number of addressable bit indices.
	Capacity() int
	// Count returns the number of set bits.
	Count() int
	IsEmpty() bool
	// Test reports whether bit pos is set. Out-of-range positions are unset.
	Test(pos int) bool
	// NextSet returns the first set bit at or after from.
	NextSet(from int) (int, bool)

	Union(other Engine) Engine
	Intersect(other Engine) Engine
	Minus(other Engine) Engine
	Equal(other Engine) bool

	Big() *big.Int
	Words() []uint64
	Uint64() (uint64, error)
}

// KindFor returns the engine variant used for a domain of the given width.
func KindFor(width int) Kind {
	if width <= SmallLimit {
		return Small
	}
	return General
}

// Empty returns the empty pattern.
func Empty(width int) Engine {
	if KindFor(width) == Small {
		return &small{width: width}
	}
	return &general{width: width, bits: new(big.Int)}
}

// Full returns the pattern with every position of the domain set.
func Full(width int) Engine {
	if KindFor(width) == Small {
		return &small{width: width, bits: mask(width)}
	}
	b := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return &general{width: width, bits: b.Sub(b, big.NewInt(1))}
}

// FromUint64 builds a pattern from a fixed-width word.
func FromUint64(width int, v uint64) (Engine, error) {
	if KindFor(width) != Small {
		return nil, fmt.Errorf("%w: domain has %d elements, uint64 holds %d", ErrTooManyElements, width, SmallLimit)
	}
	if err := codec.CheckUint64Width(v, width); err != nil {
		return nil, err
	}
	return &small{width: width, bits: v}, nil
}

// FromBig builds a pattern from an arbitrary-precision integer. b is copied.
func FromBig(width int, b *big.Int) (Engine, error) {
	if err := codec.CheckWidth(b, width); err != nil {
		return nil, err
	}
	if KindFor(width) == Small {
		return &small{width: width, bits: b.Uint64()}, nil
	}
	return &general{width: width, bits: new(big.Int).Set(b)}, nil
}

// FromBitSet builds a pattern from a native bitset.
func FromBitSet(width int, bs *bitset.BitSet) (Engine, error) {
	if err := codec.CheckBitSetWidth(bs, width); err != nil {
		return nil, err
	}
	return FromBig(width, codec.BigFromBitSet(bs))
}

// FromRoaring builds a pattern from a compressed bitmap.
func FromRoaring(width int, rb *roaring.Bitmap) (Engine, error) {
	if err := codec.CheckRoaringWidth(rb, width); err != nil {
		return nil, err
	}
	b, err := codec.BigFromRoaring(rb)
	if err != nil {
		return nil, err
	}
	return FromBig(width, b)
}

// FromPositions builds a pattern with the given positions set.
// Positions must lie in [0,width).
func FromPositions(width int, positions []int) Engine {
	if KindFor(width) == Small {
		var bits uint64
		for _, p := range positions {
			bits |= 1 << uint(p)
		}
		return &small{width: width, bits: bits}
	}
	b := new(big.Int)
	for _, p := range positions {
		b.SetBit(b, p, 1)
	}
	return &general{width: width, bits: b}
}

// Resize re-bases e onto a domain of another width, keeping positions.
func Resize(e Engine, width int) (Engine, error) {
	if e.Width() == width {
		return e, nil
	}
	return FromBig(width, e.Big())
}

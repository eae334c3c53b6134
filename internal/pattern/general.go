package pattern

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/hupe1980/domainset/codec"
)

// general stores the pattern of a domain of any size in a non-negative big.Int.
// The integer is never mutated after construction.
type general struct {
	width int
	bits  *big.Int
}

func (g *general) Kind() Kind    { return General }
func (g *general) Width() int    { return g.width }
func (g *general) Capacity() int { return g.width }
func (g *general) IsEmpty() bool { return g.bits.Sign() == 0 }

func (g *general) Count() int {
	n := 0
	for _, w := range g.bits.Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}

func (g *general) Test(pos int) bool {
	if pos < 0 {
		return false
	}
	return g.bits.Bit(pos) == 1
}

func (g *general) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < g.bits.BitLen(); i++ {
		if g.bits.Bit(i) == 1 {
			return i, true
		}
	}
	return 0, false
}

func (g *general) Union(other Engine) Engine {
	return &general{width: g.width, bits: new(big.Int).Or(g.bits, bigOf(other))}
}

func (g *general) Intersect(other Engine) Engine {
	return &general{width: g.width, bits: new(big.Int).And(g.bits, bigOf(other))}
}

func (g *general) Minus(other Engine) Engine {
	return &general{width: g.width, bits: new(big.Int).AndNot(g.bits, bigOf(other))}
}

func (g *general) Equal(other Engine) bool {
	o, ok := other.(*general)
	return ok && o.width == g.width && o.bits.Cmp(g.bits) == 0
}

func (g *general) Big() *big.Int {
	return new(big.Int).Set(g.bits)
}

func (g *general) Words() []uint64 {
	words, err := codec.WordsFromBig(g.bits)
	if err != nil {
		panic(err) // unreachable, bits is non-negative
	}
	return words
}

// Uint64 fails for every general pattern. The decision depends on the domain
// size only, not on which bits are set.
func (g *general) Uint64() (uint64, error) {
	return 0, fmt.Errorf("%w: domain has %d elements, uint64 holds %d", ErrTooManyElements, g.width, SmallLimit)
}

func bigOf(e Engine) *big.Int {
	if o, ok := e.(*general); ok {
		return o.bits
	}
	return e.Big()
}

package pattern

import (
	"math/big"
	"math/bits"

	"github.com/hupe1980/domainset/codec"
)

// small stores the pattern of a domain of at most 64 elements in one word.
// Bits at positions >= width are always zero.
type small struct {
	width int
	bits  uint64
}

func mask(width int) uint64 {
	if width >= SmallLimit {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

func (s *small) Kind() Kind    { return Small }
func (s *small) Width() int    { return s.width }
func (s *small) Capacity() int { return SmallLimit }
func (s *small) Count() int    { return bits.OnesCount64(s.bits) }
func (s *small) IsEmpty() bool { return s.bits == 0 }

func (s *small) Test(pos int) bool {
	if pos < 0 || pos >= SmallLimit {
		return false
	}
	return s.bits&(1<<uint(pos)) != 0
}

func (s *small) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= SmallLimit {
		return 0, false
	}
	w := s.bits >> uint(from)
	if w == 0 {
		return 0, false
	}
	return from + bits.TrailingZeros64(w), true
}

func (s *small) Union(other Engine) Engine {
	return &small{width: s.width, bits: s.bits | wordOf(other)}
}

func (s *small) Intersect(other Engine) Engine {
	return &small{width: s.width, bits: s.bits & wordOf(other)}
}

func (s *small) Minus(other Engine) Engine {
	return &small{width: s.width, bits: s.bits &^ wordOf(other)}
}

func (s *small) Equal(other Engine) bool {
	o, ok := other.(*small)
	return ok && o.width == s.width && o.bits == s.bits
}

func (s *small) Big() *big.Int {
	return codec.BigFromUint64(s.bits)
}

func (s *small) Words() []uint64 {
	if s.bits == 0 {
		return []uint64{}
	}
	return []uint64{s.bits}
}

func (s *small) Uint64() (uint64, error) {
	return s.bits, nil
}

// wordOf returns the low word of another engine's pattern.
func wordOf(e Engine) uint64 {
	if o, ok := e.(*small); ok {
		return o.bits
	}
	words := e.Words()
	if len(words) == 0 {
		return 0
	}
	return words[0]
}

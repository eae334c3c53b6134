package domainset

import (
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/domainset/codec"
	"github.com/hupe1980/domainset/domain"
	"github.com/hupe1980/domainset/internal/pattern"
)

// FromUint64 returns the set over d encoded by a fixed-width pattern.
// It fails with ErrTooManyElements for domains of more than 64 elements.
func FromUint64[T comparable](d *domain.Domain[T], mask uint64) (*Set[T], error) {
	e, err := pattern.FromUint64(d.Len(), mask)
	if err != nil {
		return nil, err
	}
	return &Set[T]{dom: d, eng: e}, nil
}

// FromBig returns the set over d encoded by an arbitrary-precision pattern.
func FromBig[T comparable](d *domain.Domain[T], mask *big.Int) (*Set[T], error) {
	e, err := pattern.FromBig(d.Len(), mask)
	if err != nil {
		return nil, err
	}
	return &Set[T]{dom: d, eng: e}, nil
}

// FromBitSet returns the set over d encoded by a native bitset.
func FromBitSet[T comparable](d *domain.Domain[T], bs *bitset.BitSet) (*Set[T], error) {
	e, err := pattern.FromBitSet(d.Len(), bs)
	if err != nil {
		return nil, err
	}
	return &Set[T]{dom: d, eng: e}, nil
}

// FromRoaring returns the set over d encoded by a compressed bitmap.
func FromRoaring[T comparable](d *domain.Domain[T], rb *roaring.Bitmap) (*Set[T], error) {
	e, err := pattern.FromRoaring(d.Len(), rb)
	if err != nil {
		return nil, err
	}
	return &Set[T]{dom: d, eng: e}, nil
}

// All iterates over the members in domain order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, ok := s.eng.NextSet(0); ok; i, ok = s.eng.NextSet(i + 1) {
			if !yield(s.dom.At(i)) {
				return
			}
		}
	}
}

// Positions iterates over (domain position, element) pairs of the members in domain order.
func (s *Set[T]) Positions() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, ok := s.eng.NextSet(0); ok; i, ok = s.eng.NextSet(i + 1) {
			if !yield(i, s.dom.At(i)) {
				return
			}
		}
	}
}

// ZipWithPosition returns (domain position, element) pairs of the members in domain order.
func (s *Set[T]) ZipWithPosition() []Pair[int, T] {
	out := make([]Pair[int, T], 0, s.Len())
	for i, e := range s.Positions() {
		out = append(out, MakePair(i, e))
	}
	return out
}

// Elements returns the members in domain order.
func (s *Set[T]) Elements() []T {
	out := make([]T, 0, s.Len())
	for e := range s.All() {
		out = append(out, e)
	}
	return out
}

// ToMap returns the members as a plain Go set without a domain.
func (s *Set[T]) ToMap() map[T]struct{} {
	out := make(map[T]struct{}, s.Len())
	for e := range s.All() {
		out[e] = struct{}{}
	}
	return out
}

// Big returns the pattern as an arbitrary-precision integer.
func (s *Set[T]) Big() *big.Int {
	return s.eng.Big()
}

// Uint64 returns the pattern as a fixed-width word.
// It fails with ErrTooManyElements whenever the domain has more than 64 elements,
// even if the set is empty.
func (s *Set[T]) Uint64() (uint64, error) {
	return s.eng.Uint64()
}

// BitSet returns the pattern as a native bitset.
func (s *Set[T]) BitSet() *bitset.BitSet {
	return bitset.From(s.eng.Words())
}

// Roaring returns the pattern as a compressed bitmap.
func (s *Set[T]) Roaring() (*roaring.Bitmap, error) {
	return codec.RoaringFromBig(s.eng.Big())
}

// BinaryString renders the pattern in base 2, zero-padded to the domain size.
func (s *Set[T]) BinaryString() string {
	return s.BinaryStringWidth(s.dom.Len())
}

// BinaryStringWidth renders the pattern in base 2, zero-padded to at least width digits.
func (s *Set[T]) BinaryStringWidth(width int) string {
	digits := s.eng.Big().Text(2)
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for e := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

package domainset

import (
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/domainset/internal/pattern"
)

type binaryOp func(a, b pattern.Engine) pattern.Engine

func union(a, b pattern.Engine) pattern.Engine     { return a.Union(b) }
func intersect(a, b pattern.Engine) pattern.Engine { return a.Intersect(b) }
func minus(a, b pattern.Engine) pattern.Engine     { return a.Minus(b) }

func (s *Set[T]) combine(op binaryOp, other *Set[T]) (*Set[T], error) {
	if other == nil {
		return nil, incompatible(s.dom.Len(), 0)
	}
	if !s.dom.Equal(other.dom) {
		return nil, incompatible(s.dom.Len(), other.dom.Len())
	}
	return s.with(op(s.eng, other.eng)), nil
}

func (s *Set[T]) combineEngine(op binaryOp, operand pattern.Engine, err error) (*Set[T], error) {
	if err != nil {
		return nil, err
	}
	return s.with(op(s.eng, operand)), nil
}

func (s *Set[T]) combineElements(op binaryOp, elements []T) (*Set[T], error) {
	positions, err := positionsOf(s.dom, elements)
	if err != nil {
		return nil, err
	}
	return s.with(op(s.eng, pattern.FromPositions(s.dom.Len(), positions))), nil
}

// Union returns the union of s and other. Both must share an equal domain.
func (s *Set[T]) Union(other *Set[T]) (*Set[T], error) {
	return s.combine(union, other)
}

// UnionUint64 returns the union of s and a fixed-width pattern.
func (s *Set[T]) UnionUint64(mask uint64) (*Set[T], error) {
	e, err := pattern.FromUint64(s.dom.Len(), mask)
	return s.combineEngine(union, e, err)
}

// UnionBig returns the union of s and an arbitrary-precision pattern.
func (s *Set[T]) UnionBig(mask *big.Int) (*Set[T], error) {
	e, err := pattern.FromBig(s.dom.Len(), mask)
	return s.combineEngine(union, e, err)
}

// UnionBitSet returns the union of s and a native bitset.
func (s *Set[T]) UnionBitSet(bs *bitset.BitSet) (*Set[T], error) {
	e, err := pattern.FromBitSet(s.dom.Len(), bs)
	return s.combineEngine(union, e, err)
}

// UnionRoaring returns the union of s and a compressed bitmap.
func (s *Set[T]) UnionRoaring(rb *roaring.Bitmap) (*Set[T], error) {
	e, err := pattern.FromRoaring(s.dom.Len(), rb)
	return s.combineEngine(union, e, err)
}

// UnionElements returns s with the given domain elements added.
func (s *Set[T]) UnionElements(elements ...T) (*Set[T], error) {
	return s.combineElements(union, elements)
}

// Intersect returns the intersection of s and other. Both must share an equal domain.
func (s *Set[T]) Intersect(other *Set[T]) (*Set[T], error) {
	return s.combine(intersect, other)
}

// IntersectUint64 returns the intersection of s and a fixed-width pattern.
func (s *Set[T]) IntersectUint64(mask uint64) (*Set[T], error) {
	e, err := pattern.FromUint64(s.dom.Len(), mask)
	return s.combineEngine(intersect, e, err)
}

// IntersectBig returns the intersection of s and an arbitrary-precision pattern.
func (s *Set[T]) IntersectBig(mask *big.Int) (*Set[T], error) {
	e, err := pattern.FromBig(s.dom.Len(), mask)
	return s.combineEngine(intersect, e, err)
}

// IntersectBitSet returns the intersection of s and a native bitset.
func (s *Set[T]) IntersectBitSet(bs *bitset.BitSet) (*Set[T], error) {
	e, err := pattern.FromBitSet(s.dom.Len(), bs)
	return s.combineEngine(intersect, e, err)
}

// IntersectRoaring returns the intersection of s and a compressed bitmap.
func (s *Set[T]) IntersectRoaring(rb *roaring.Bitmap) (*Set[T], error) {
	e, err := pattern.FromRoaring(s.dom.Len(), rb)
	return s.combineEngine(intersect, e, err)
}

// IntersectElements returns the members of s that are among the given elements.
func (s *Set[T]) IntersectElements(elements ...T) (*Set[T], error) {
	return s.combineElements(intersect, elements)
}

// Minus returns the relative complement of other in s. Both must share an equal domain.
func (s *Set[T]) Minus(other *Set[T]) (*Set[T], error) {
	return s.combine(minus, other)
}

// MinusUint64 returns s without the positions set in a fixed-width pattern.
func (s *Set[T]) MinusUint64(mask uint64) (*Set[T], error) {
	e, err := pattern.FromUint64(s.dom.Len(), mask)
	return s.combineEngine(minus, e, err)
}

// MinusBig returns s without the positions set in an arbitrary-precision pattern.
func (s *Set[T]) MinusBig(mask *big.Int) (*Set[T], error) {
	e, err := pattern.FromBig(s.dom.Len(), mask)
	return s.combineEngine(minus, e, err)
}

// MinusBitSet returns s without the positions set in a native bitset.
func (s *Set[T]) MinusBitSet(bs *bitset.BitSet) (*Set[T], error) {
	e, err := pattern.FromBitSet(s.dom.Len(), bs)
	return s.combineEngine(minus, e, err)
}

// MinusRoaring returns s without the positions set in a compressed bitmap.
func (s *Set[T]) MinusRoaring(rb *roaring.Bitmap) (*Set[T], error) {
	e, err := pattern.FromRoaring(s.dom.Len(), rb)
	return s.combineEngine(minus, e, err)
}

// MinusElements returns s without the given elements.
func (s *Set[T]) MinusElements(elements ...T) (*Set[T], error) {
	return s.combineElements(minus, elements)
}

// Complement returns the full set of the domain minus s.
func (s *Set[T]) Complement() *Set[T] {
	return s.with(pattern.Full(s.dom.Len()).Minus(s.eng))
}

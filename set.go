package domainset

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/domainset/domain"
	"github.com/hupe1980/domainset/internal/pattern"
	"github.com/zeebo/xxh3"
)

// Set is an immutable subset of a Domain.
//
// All operations return new sets that share the receiver's domain. A Set is safe
// for concurrent reads.
type Set[T comparable] struct {
	dom *domain.Domain[T]
	eng pattern.Engine
}

// AllOf creates a domain from elements and returns the set containing all of them.
func AllOf[T comparable](elements ...T) (*Set[T], error) {
	d, err := domain.New(elements)
	if err != nil {
		return nil, err
	}
	return Full(d), nil
}

// NoneOf creates a domain from elements and returns the empty set over it.
func NoneOf[T comparable](elements ...T) (*Set[T], error) {
	d, err := domain.New(elements)
	if err != nil {
		return nil, err
	}
	return Empty(d), nil
}

// Full returns the set containing every element of d.
func Full[T comparable](d *domain.Domain[T]) *Set[T] {
	return &Set[T]{dom: d, eng: pattern.Full(d.Len())}
}

// Empty returns the empty set over d.
func Empty[T comparable](d *domain.Domain[T]) *Set[T] {
	return &Set[T]{dom: d, eng: pattern.Empty(d.Len())}
}

// Of returns the set over d containing the given elements.
func Of[T comparable](d *domain.Domain[T], elements ...T) (*Set[T], error) {
	positions, err := positionsOf(d, elements)
	if err != nil {
		return nil, err
	}
	return &Set[T]{dom: d, eng: pattern.FromPositions(d.Len(), positions)}, nil
}

func (s *Set[T]) with(e pattern.Engine) *Set[T] {
	return &Set[T]{dom: s.dom, eng: e}
}

// Domain returns the universe of the set.
func (s *Set[T]) Domain() *domain.Domain[T] {
	return s.dom
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.eng.Count()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.eng.IsEmpty()
}

// Contains reports whether e is a member. Elements outside the domain are never members.
func (s *Set[T]) Contains(e T) bool {
	pos := s.dom.IndexOf(e)
	return pos != domain.NotFound && s.eng.Test(pos)
}

// ContainsAll reports whether every given element is a member.
func (s *Set[T]) ContainsAll(elements ...T) bool {
	for _, e := range elements {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// DomainContains reports whether e belongs to the domain of the set.
func (s *Set[T]) DomainContains(e T) bool {
	return s.dom.Contains(e)
}

// Bit returns the membership bit at index i.
//
// Small sets address 64 bits regardless of their domain size; indices past the
// domain are unset. Larger sets address exactly their domain.
func (s *Set[T]) Bit(i int) (bool, error) {
	if i < 0 || i >= s.eng.Capacity() {
		return false, fmt.Errorf("%w: bit %d not in [0,%d)", ErrIndexOutOfRange, i, s.eng.Capacity())
	}
	return s.eng.Test(i), nil
}

// Element returns the domain element at position i and whether it is a member.
func (s *Set[T]) Element(i int) (T, bool, error) {
	e, err := s.dom.Get(i)
	if err != nil {
		return e, false, err
	}
	return e, s.eng.Test(i), nil
}

// Equal reports whether both sets have equal domains and the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.dom.Equal(other.dom) && s.eng.Equal(other.eng)
}

// EqualDomain reports whether both sets are drawn from equal domains.
func (s *Set[T]) EqualDomain(other *Set[T]) bool {
	return s != nil && other != nil && s.dom.Equal(other.dom)
}

// EqualElements reports whether both sets have the same members, ignoring their domains.
func (s *Set[T]) EqualElements(other *Set[T]) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Len() != other.Len() {
		return false
	}
	for e := range s.All() {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the domain size and membership.
// Equal sets have equal hashes.
func (s *Set[T]) Hash() uint64 {
	words := s.eng.Words()
	buf := make([]byte, 8*(len(words)+1))
	binary.LittleEndian.PutUint64(buf, uint64(s.dom.Len()))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*(i+1):], w)
	}
	return xxh3.Hash(buf)
}

func positionsOf[T comparable](d *domain.Domain[T], elements []T) ([]int, error) {
	positions := make([]int, 0, len(elements))
	for _, e := range elements {
		pos, err := d.PositionOf(e)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

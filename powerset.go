package domainset

import (
	"fmt"
	"iter"
	"math/big"
	"math/bits"

	"github.com/hupe1980/domainset/internal/pattern"
)

// Powerset enumerates all 2^k subsets of a set of k <= 64 members.
//
// Subset i contains member x of the source, counted in the source's own domain
// order, exactly when bit x of i is set. Subset 0 is empty and subset 2^k-1 is
// the source itself.
//
// A Powerset holds no iteration state and is safe for concurrent use.
type Powerset[T comparable] struct {
	src     *Set[T]
	members []int // domain positions of the source members, ascending
	last    uint64
}

// Powerset returns the powerset of s. It fails with ErrTooManyElements if s has
// more than 64 members; the size of the domain does not matter.
func (s *Set[T]) Powerset() (*Powerset[T], error) {
	k := s.Len()
	if k > pattern.SmallLimit {
		return nil, fmt.Errorf("%w: set has %d members, powerset is limited to %d", ErrTooManyElements, k, pattern.SmallLimit)
	}

	members := make([]int, 0, k)
	for i, ok := s.eng.NextSet(0); ok; i, ok = s.eng.NextSet(i + 1) {
		members = append(members, i)
	}

	// for k == 64 the shift yields 0 and last wraps to MaxUint64
	return &Powerset[T]{src: s, members: members, last: uint64(1)<<uint(k) - 1}, nil
}

// Source returns the set the powerset was built from.
func (p *Powerset[T]) Source() *Set[T] {
	return p.src
}

// Bits returns k, the number of source members.
func (p *Powerset[T]) Bits() int {
	return len(p.members)
}

// Len returns 2^k, the number of subsets.
func (p *Powerset[T]) Len() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(len(p.members)))
}

// Last returns 2^k-1, the largest enumeration index.
func (p *Powerset[T]) Last() uint64 {
	return p.last
}

// Subset returns the subset at enumeration index i.
func (p *Powerset[T]) Subset(i uint64) (*Set[T], error) {
	if i > p.last {
		return nil, fmt.Errorf("%w: subset %d of a powerset with %d bits", ErrIndexOutOfRange, i, len(p.members))
	}
	return p.subset(i), nil
}

func (p *Powerset[T]) subset(i uint64) *Set[T] {
	positions := make([]int, 0, bits.OnesCount64(i))
	for rest := i; rest != 0; rest &= rest - 1 {
		positions = append(positions, p.members[bits.TrailingZeros64(rest)])
	}
	return p.src.with(pattern.FromPositions(p.src.dom.Len(), positions))
}

// All iterates over (index, subset) pairs in ascending index order.
// Every call starts a fresh enumeration.
func (p *Powerset[T]) All() iter.Seq2[uint64, *Set[T]] {
	return func(yield func(uint64, *Set[T]) bool) {
		c := p.Cursor()
		for {
			i := c.Index()
			s, ok := c.Next()
			if !ok || !yield(i, s) {
				return
			}
		}
	}
}

// Cursor returns a new cursor positioned before subset 0.
func (p *Powerset[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{p: p}
}

// Cursor walks a powerset in ascending index order.
// A Cursor is not safe for concurrent use.
type Cursor[T comparable] struct {
	p    *Powerset[T]
	next uint64
	done bool
}

// Next returns the next subset, or false once all 2^k subsets were returned.
func (c *Cursor[T]) Next() (*Set[T], bool) {
	if c.done {
		return nil, false
	}
	s := c.p.subset(c.next)
	if c.next == c.p.last {
		c.done = true
	} else {
		c.next++
	}
	return s, true
}

// Index returns the index of the subset the next call to Next returns.
func (c *Cursor[T]) Index() uint64 {
	return c.next
}

// Done reports whether the cursor is exhausted.
func (c *Cursor[T]) Done() bool {
	return c.done
}

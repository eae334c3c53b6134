package domainset

import (
	"fmt"

	"github.com/hupe1980/domainset/domain"
	"github.com/hupe1980/domainset/internal/pattern"
)

// Pair is an ordered 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Map re-indexes s onto target by position: the member at position i of the
// source domain becomes the element at position i of target.
//
// Map fails with a *DomainTooSmallError if target has fewer positions than the
// domain of s.
func Map[T, S comparable](s *Set[T], target *domain.Domain[S]) (*Set[S], error) {
	if target.Len() < s.dom.Len() {
		return nil, &DomainTooSmallError{Source: s.dom.Len(), Target: target.Len()}
	}
	e, err := pattern.Resize(s.eng, target.Len())
	if err != nil {
		return nil, err
	}
	return &Set[S]{dom: target, eng: e}, nil
}

// MapFunc applies fn to every member of s and collects the results in a set over target.
// It fails with ErrElementNotInDomain if fn returns an element outside target.
func MapFunc[T, S comparable](s *Set[T], target *domain.Domain[S], fn func(T) S) (*Set[S], error) {
	positions := make([]int, 0, s.Len())
	for e := range s.All() {
		pos, err := target.PositionOf(fn(e))
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return &Set[S]{dom: target, eng: pattern.FromPositions(target.Len(), positions)}, nil
}

// Cross returns the Cartesian product of a and b in domain order of a, then b.
// If either operand is empty the result is nil and neither operand is iterated.
func Cross[T, Y comparable](a *Set[T], b *Set[Y]) []Pair[T, Y] {
	if a.IsEmpty() || b.IsEmpty() {
		return nil
	}
	out := make([]Pair[T, Y], 0, a.Len()*b.Len())
	CrossFunc(a, b, func(x T, y Y) {
		out = append(out, MakePair(x, y))
	})
	return out
}

// CrossFunc calls fn once for every pair of the Cartesian product of a and b.
func CrossFunc[T, Y comparable](a *Set[T], b *Set[Y], fn func(T, Y)) {
	if a.IsEmpty() || b.IsEmpty() {
		return
	}
	for x := range a.All() {
		for y := range b.All() {
			fn(x, y)
		}
	}
}

// Semijoin returns the members of a that match at least one member of b under pred.
// pred is evaluated for all |a|×|b| pairs.
func Semijoin[T, S comparable](a *Set[T], b *Set[S], pred func(T, S) bool) *Set[T] {
	var positions []int
	last := domain.NotFound
	CrossFunc(a, b, func(x T, y S) {
		if !pred(x, y) {
			return
		}
		if pos := a.dom.IndexOf(x); pos != last {
			positions = append(positions, pos)
			last = pos
		}
	})
	return a.with(pattern.FromPositions(a.dom.Len(), positions))
}

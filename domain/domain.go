package domain

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// NotFound is returned by IndexOf for elements outside the domain.
const NotFound = -1

var (
	// ErrDuplicateElement is returned when an element occurs more than once.
	ErrDuplicateElement = errors.New("duplicate element")

	// ErrNullElement is returned when an element is nil.
	ErrNullElement = errors.New("nil element")

	// ErrIndexOutOfRange is returned for positional access outside the domain.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrElementNotInDomain is returned when an element is not a member of the domain.
	ErrElementNotInDomain = errors.New("element not in domain")
)

// Domain is an ordered set of distinct elements.
type Domain[T comparable] struct {
	elems []T
	index map[T]int
}

// New creates a domain from the given elements. The order of elements defines
// their positions. The slice is copied.
func New[T comparable](elements []T) (*Domain[T], error) {
	d := &Domain[T]{
		elems: make([]T, len(elements)),
		index: make(map[T]int, len(elements)),
	}

	for i, e := range elements {
		if isNil(e) {
			return nil, fmt.Errorf("%w at position %d", ErrNullElement, i)
		}
		if j, ok := d.index[e]; ok {
			return nil, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateElement, e, j, i)
		}
		d.elems[i] = e
		d.index[e] = i
	}

	return d, nil
}

// MustNew is like New but panics on error.
func MustNew[T comparable](elements []T) *Domain[T] {
	d, err := New(elements)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of elements in the domain.
func (d *Domain[T]) Len() int {
	return len(d.elems)
}

// Get returns the element at position i.
func (d *Domain[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(d.elems) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(d.elems))
	}
	return d.elems[i], nil
}

// At returns the element at position i. It panics if i is out of range.
func (d *Domain[T]) At(i int) T {
	return d.elems[i]
}

// IndexOf returns the position of e, or NotFound.
func (d *Domain[T]) IndexOf(e T) int {
	if i, ok := d.index[e]; ok {
		return i
	}
	return NotFound
}

// PositionOf is like IndexOf but reports elements outside the domain as ErrElementNotInDomain.
func (d *Domain[T]) PositionOf(e T) (int, error) {
	i, ok := d.index[e]
	if !ok {
		return NotFound, fmt.Errorf("%w: %v", ErrElementNotInDomain, e)
	}
	return i, nil
}

// Contains reports whether e is an element of the domain.
func (d *Domain[T]) Contains(e T) bool {
	_, ok := d.index[e]
	return ok
}

// Elements returns a copy of the elements in domain order.
func (d *Domain[T]) Elements() []T {
	out := make([]T, len(d.elems))
	copy(out, d.elems)
	return out
}

// All iterates over (position, element) pairs in domain order.
func (d *Domain[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range d.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Equal reports whether both domains hold the same elements in the same order.
func (d *Domain[T]) Equal(other *Domain[T]) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || len(d.elems) != len(other.elems) {
		return false
	}
	for i, e := range d.elems {
		if other.elems[i] != e {
			return false
		}
	}
	return true
}

func (d *Domain[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Domain[")
	for i, e := range d.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte(']')
	return sb.String()
}

// isNil reports untyped nil and nil pointers, unsafe pointers and channels.
// Those are the only nillable kinds a comparable value can hold once boxed.
func isNil(e any) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

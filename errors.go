package domainset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/domainset/codec"
	"github.com/hupe1980/domainset/domain"
	"github.com/hupe1980/domainset/internal/pattern"
)

var (
	// ErrIncompatibleDomain is returned when two sets are combined whose domains differ.
	ErrIncompatibleDomain = errors.New("incompatible domain")

	// ErrDomainTooSmall is returned when a set is mapped onto a domain with fewer positions.
	ErrDomainTooSmall = errors.New("domain too small")

	// ErrNilSink is returned when a bulk powerset dispatch is started without a sink.
	ErrNilSink = errors.New("nil sink")

	// ErrElementNotInDomain is returned when an element is outside the declared universe.
	ErrElementNotInDomain = domain.ErrElementNotInDomain

	// ErrIndexOutOfRange is returned for positional access outside bounds.
	ErrIndexOutOfRange = domain.ErrIndexOutOfRange

	// ErrDuplicateElement is returned when a domain is built from repeating elements.
	ErrDuplicateElement = domain.ErrDuplicateElement

	// ErrNullElement is returned when a domain is built from a nil element.
	ErrNullElement = domain.ErrNullElement

	// ErrMagnitudeTooLarge is returned when a bit pattern is negative or wider than the domain.
	ErrMagnitudeTooLarge = codec.ErrMagnitudeTooLarge

	// ErrTooManyElements is returned when an operation needs a universe of at most 64 elements.
	ErrTooManyElements = pattern.ErrTooManyElements
)

// DomainTooSmallError indicates a positional mapping onto a smaller domain.
//
// errors.Is(err, ErrDomainTooSmall) reports true for it.
type DomainTooSmallError struct {
	Source int
	Target int
}

func (e *DomainTooSmallError) Error() string {
	return fmt.Sprintf("domain too small: source has %d positions, target has %d", e.Source, e.Target)
}

func (e *DomainTooSmallError) Unwrap() error { return ErrDomainTooSmall }

// SinkError wraps the first error returned by a sink during bulk powerset dispatch.
//
// The original sink error can be accessed via errors.Unwrap.
type SinkError struct {
	// Index is the enumeration index of the subset the sink rejected.
	Index uint64
	Err   error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink failed on subset %d: %v", e.Index, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

func incompatible(a, b int) error {
	return fmt.Errorf("%w: domains of %d and %d elements differ", ErrIncompatibleDomain, a, b)
}

// Package domainset provides immutable sets over a fixed, ordered universe.
//
// A Set is a subset of a domain.Domain, encoded as a bit pattern where bit i
// stands for the i-th domain element. Sets over domains of up to 64 elements are
// backed by a single uint64; larger domains use a *big.Int. The representation is
// chosen once when a set is created and never shows through the API: equality,
// hashing and every operation depend only on the domain and the members.
//
// # Quick Start
//
//	s, _ := domainset.AllOf(1, 2, 3, 4)
//	evens, _ := s.IntersectElements(2, 4)
//	odds := evens.Complement()          // {1, 3}
//	u, _ := evens.Union(odds)           // {1, 2, 3, 4}
//	mask, _ := evens.Uint64()           // 0b1010
//
// # Encodings
//
// Every algebraic operation accepts another set over an equal domain or one of
// the bit pattern encodings: uint64, *big.Int, *bitset.BitSet and
// *roaring.Bitmap. Patterns with bits outside the domain are rejected with
// ErrMagnitudeTooLarge; uint64 patterns and Uint64 fail with ErrTooManyElements
// for domains of more than 64 elements, whatever the membership.
//
// # Derived Operations
//
// Map, MapFunc, Cross, CrossFunc and Semijoin are package functions because
// they change the element type.
//
// # Powerset
//
// Powerset enumerates all subsets of a set of up to 64 members, either lazily
//
//	ps, _ := s.Powerset()
//	for i, sub := range ps.All() {
//	    fmt.Println(i, sub)
//	}
//
// or concurrently on a worker pool that lives for one call:
//
//	job, err := ps.Dispatch(ctx, func(sub *domainset.Set[int]) error {
//	    return nil
//	}, true, domainset.WithWorkers(8))
//
// # Concurrency
//
// Sets, domains and powersets are immutable and safe for concurrent reads.
// Only Dispatch runs work concurrently.
package domainset

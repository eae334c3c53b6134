// Package pattern implements the two storage engines behind a bounded set.
//
// An Engine holds the membership bits of one subset of a domain of fixed width.
// Widths up to SmallLimit use a single uint64 word; wider domains use a
// non-negative *big.Int. The variant is picked once by the constructors from the
// width alone, so two engines of the same width are always of the same kind.
//
// Engines are immutable. Every operation returns a new Engine.
package pattern

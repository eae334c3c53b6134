// Package testutil provides testing utilities for domainset.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible domains and membership patterns for
// property-style tests of the set algebra.
//
// # Random Patterns
//
//	rng := testutil.NewRNG(seed)
//	elems := testutil.Ints(100)        // domain [0, 100)
//	positions := rng.Positions(100)    // random subset of positions
//	mask := rng.Mask(12)               // random uint64 with 12 valid bits
package testutil

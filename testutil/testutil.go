package testutil

import (
	"math/big"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Mask returns a pseudo-random pattern with no bit set at or above width.
// width must be in [0, 64].
func (r *RNG) Mask(width int) uint64 {
	v := r.Uint64()
	if width >= 64 {
		return v
	}
	return v & (1<<uint(width) - 1)
}

// Positions returns a pseudo-random ascending subset of [0, width).
// Each position is included with probability one half.
func (r *RNG) Positions(width int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, 0, width/2)
	for i := 0; i < width; i++ {
		if r.rand.Intn(2) == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Big returns the pattern with the given positions set.
func Big(positions []int) *big.Int {
	b := new(big.Int)
	for _, p := range positions {
		b.SetBit(b, p, 1)
	}
	return b
}

// Ints returns the domain elements 0..n-1.
func Ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Range returns the domain elements from..to inclusive.
func Range(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

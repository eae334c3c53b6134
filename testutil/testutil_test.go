package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	rng := NewRNG(4711)

	for i := 0; i < 100; i++ {
		assert.Zero(t, rng.Mask(5)>>5)
	}
	assert.Zero(t, rng.Mask(0))
}

func TestPositions(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.Positions(200)
	assert.NotEmpty(t, p)
	assert.IsIncreasing(t, p)
	for _, v := range p {
		assert.Less(t, v, 200)
		assert.GreaterOrEqual(t, v, 0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.Uint64()
	rng.Reset()
	assert.Equal(t, a, rng.Uint64())
	assert.Equal(t, int64(42), rng.Seed())
}

func TestBig(t *testing.T) {
	assert.Equal(t, int64(0b1010), Big([]int{1, 3}).Int64())
	assert.Equal(t, 0, Big(nil).Sign())
}

func TestIntsAndRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Ints(3))
	assert.Equal(t, []int{1, 2, 3, 4}, Range(1, 4))
	assert.Nil(t, Range(4, 1))
}

//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionToUint32(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := PositionToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("positive", func(t *testing.T) {
		got, err := PositionToUint32(65)
		assert.NoError(t, err)
		assert.Equal(t, uint32(65), got)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := PositionToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("max uint32", func(t *testing.T) {
		got, err := PositionToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := PositionToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToPosition(t *testing.T) {
	got, err := Uint32ToPosition(math.MaxUint32)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxUint32, got)
}

func TestUintToPosition(t *testing.T) {
	got, err := UintToPosition(7)
	assert.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = UintToPosition(uint(math.MaxInt) + 1)
	assert.Error(t, err)
}

func TestPositionToUint(t *testing.T) {
	got, err := PositionToUint(64)
	assert.NoError(t, err)
	assert.Equal(t, uint(64), got)

	_, err = PositionToUint(-3)
	assert.Error(t, err)
}

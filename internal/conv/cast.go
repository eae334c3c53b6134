package conv

import (
	"fmt"
	"math"
)

// PositionToUint32 converts a domain position to a roaring index.
func PositionToUint32(pos int) (uint32, error) {
	if pos < 0 {
		return 0, fmt.Errorf("position %d cannot be converted to uint32 (negative)", pos)
	}
	if uint64(pos) > math.MaxUint32 {
		return 0, fmt.Errorf("position %d cannot be converted to uint32 (too large)", pos)
	}
	return uint32(pos), nil
}

// Uint32ToPosition converts a roaring index to a domain position.
func Uint32ToPosition(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("index %d cannot be converted to a position (too large)", v)
	}
	return int(v), nil
}

// UintToPosition converts a bitset index to a domain position.
func UintToPosition(v uint) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("index %d cannot be converted to a position (too large)", v)
	}
	return int(v), nil
}

// PositionToUint converts a non-negative domain position to a bitset index.
func PositionToUint(pos int) (uint, error) {
	if pos < 0 {
		return 0, fmt.Errorf("position %d cannot be converted to uint (negative)", pos)
	}
	return uint(pos), nil
}

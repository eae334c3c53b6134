// Package conv provides checked conversions between domain positions and the
// unsigned index types used by the bitset and roaring encodings.
//
// Positions are plain ints everywhere in the public API; the encodings address
// bits with uint (bitset) or uint32 (roaring).
package conv

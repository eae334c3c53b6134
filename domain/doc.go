// Package domain provides the ordered, immutable universe that bounded sets are drawn from.
//
// A Domain is an ordered sequence of distinct, non-nil elements. Position i of the
// domain corresponds to bit i of every bit pattern built on it:
//
//	d, err := domain.New([]string{"red", "green", "blue"})
//	d.IndexOf("green") // 1
//	d.Get(2)           // "blue", nil
//
// A Domain is never mutated after construction and can be shared freely between
// goroutines and sets.
package domain

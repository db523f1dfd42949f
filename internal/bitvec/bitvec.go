// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package bitvec defines a bit vector type useful for
// slot bookkeeping (e.g., issued queries and enabled
// capabilities).
package bitvec

import (
	"iter"
	"math/bits"
	"unsafe"
)

// Uint represents the granularity of a bit vector.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// V is a growable bit vector with custom granularity.
// The zero value is an empty vector.
type V[T Uint] struct {
	s   []T
	rem int
}

// nbit returns the number of bits in T.
func (*V[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Len returns the number of bits in the vector.
func (v *V[_]) Len() int { return len(v.s) * v.nbit() }

// Rem returns the number of unset bits in the vector.
func (v *V[_]) Rem() int { return v.rem }

// Count returns the number of set bits in the vector.
func (v *V[_]) Count() int { return v.Len() - v.rem }

// Grow appends nplus Uints worth of unset bits to the
// vector. It returns the index of the first new bit.
// Values of nplus less than 1 are ignored.
func (v *V[T]) Grow(nplus int) (index int) {
	index = v.Len()
	if nplus > 0 {
		v.rem += nplus * v.nbit()
		v.s = append(v.s, make([]T, nplus)...)
	}
	return
}

// Ensure grows the vector, if needed, so that it contains
// at least n bits.
func (v *V[T]) Ensure(n int) {
	if d := n - v.Len(); d > 0 {
		nb := v.nbit()
		v.Grow((d + nb - 1) / nb)
	}
}

func (v *V[T]) pos(index int) (int, T) {
	n := v.nbit()
	return index / n, T(1) << (index & (n - 1))
}

// Set sets a given bit.
// It returns whether the bit was unset before the call.
func (v *V[T]) Set(index int) bool {
	i, b := v.pos(index)
	if v.s[i]&b != 0 {
		return false
	}
	v.s[i] |= b
	v.rem--
	return true
}

// Unset unsets a given bit.
// It returns whether the bit was set before the call.
func (v *V[T]) Unset(index int) bool {
	i, b := v.pos(index)
	if v.s[i]&b == 0 {
		return false
	}
	v.s[i] &^= b
	v.rem++
	return true
}

// IsSet checks whether a given bit is set.
func (v *V[T]) IsSet(index int) bool {
	i, b := v.pos(index)
	return v.s[i]&b != 0
}

// UnsetRange unsets the bits in the range [index, index+n).
func (v *V[T]) UnsetRange(index, n int) {
	for i := index; i < index+n; i++ {
		v.Unset(i)
	}
}

// Search locates the first unset bit in the vector.
// It fails only when v.Rem() == 0.
func (v *V[T]) Search() (index int, ok bool) {
	if v.rem == 0 {
		return
	}
	for i, x := range v.s {
		if x == ^T(0) {
			continue
		}
		return i*v.nbit() + bits.TrailingZeros64(uint64(^x)), true
	}
	return
}

// Clear unsets every bit in the vector.
func (v *V[T]) Clear() {
	clear(v.s)
	v.rem = v.Len()
}

// SetBits returns an iterator over the indices of the set bits,
// in increasing order.
func (v *V[T]) SetBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := v.nbit()
		for i, x := range v.s {
			for x != 0 {
				b := bits.TrailingZeros64(uint64(x))
				if !yield(i*n + b) {
					return
				}
				x &^= T(1) << b
			}
		}
	}
}

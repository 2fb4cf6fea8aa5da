package gdbscan

import "math/bits"

// bitsetRow is one vertex's temporary adjacency in the bitset shape: a row
// of ceil(N/64) 64-bit words, bit j of word i meaning vertex 64*i+j is a
// neighbor. The self-bit is never set (callers guard u != v before
// calling set).
type bitsetRow []uint64

// newBitsetRow allocates a zeroed row sized for n vertices.
func newBitsetRow(n int) bitsetRow {
	return make(bitsetRow, (n+63)/64)
}

// set marks v as a neighbor.
func (r bitsetRow) set(v int) {
	r[v/64] |= 1 << uint(v%64)
}

// degree returns the number of set bits (the popcount across all
// words), the bitset-shape equivalent of a sparse row's length.
func (r bitsetRow) degree() int {
	n := 0
	for _, word := range r {
		n += bits.OnesCount64(word)
	}
	return n
}

// appendAscending appends this row's neighbor ids, in ascending order, to
// dst and returns the extended slice. Used by the finalizer's scatter
// pass: repeatedly extract the lowest set bit of each word, in word
// order, which yields ascending ids within (and across) words.
func (r bitsetRow) appendAscending(dst []int32) []int32 {
	for i, word := range r {
		for word != 0 {
			k := bits.TrailingZeros64(word)
			dst = append(dst, int32(64*i+k))
			word &= word - 1
		}
	}
	return dst
}

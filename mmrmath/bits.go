package mmrmath

import "math/bits"

// BitLength returns the number of bits needed to represent n. BitLength(0) is 0.
func BitLength(n uint64) int {
	return bits.Len64(n)
}

// Popcount returns the number of set bits in n.
func Popcount(n uint64) int {
	return bits.OnesCount64(n)
}

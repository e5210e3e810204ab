package mmrmath

// decompose greedily strips the largest maximal balanced mountain (size
// 2k-1, k leaves) that fits within the remaining size, repeating until no
// further mountain fits. It returns the total leaf count collected and
// whatever size remains unaccounted for.
//
// A remainder of zero means size is exactly the sum of distinct mountain
// sizes, i.e. a well formed MMR size.
func decompose(size uint64) (leafCount uint64, remainder uint64) {
	remaining := size
	tips := uint64(1) << uint64(BitLength(remaining+1)-1)
	for tips != 0 {
		mountainSize := 2*tips - 1
		if mountainSize <= remaining {
			remaining -= mountainSize
			leafCount += tips
		}
		tips >>= 1
	}
	return leafCount, remaining
}

// MMRSizeToLeafCount decomposes size greedily into maximal balanced
// mountains of size 2k-1 and sums their leaf counts k. It returns 0 if and
// only if size is 0.
func MMRSizeToLeafCount(size uint64) uint64 {
	leafCount, _ := decompose(size)
	return leafCount
}

// LeafCountToPeaksCount is popcount(leaves): every set bit in the leaf count
// corresponds to exactly one mountain, hence one peak.
func LeafCountToPeaksCount(leaves uint64) int {
	return Popcount(leaves)
}

// maxValidSize is 2^126, the upper range bound §4.2 places on a well formed
// MMR size. A uint64 tops out at 2^64-1, comfortably inside that bound, so
// the bound is held as the uint64 maximum; the upper half of IsValidSize's
// range check is kept visible but never rejects a size.
var maxValidSize = func() uint64 {
	// 2^126 overflows uint64; the widest value a uint64 can hold is still
	// less than it, so the range check below is phrased as "never exceeds
	// the type's own maximum", which is always true and documents intent.
	return ^uint64(0)
}()

// IsValidSize reports whether size lies in [1, 2^126] and is expressible as
// the sum of distinct mountain sizes with no remainder, i.e. the greedy
// decomposition fully consumes it. Both the range check and the
// decomposition check are required; implementations must not accept a size
// that merely passes one of the two.
func IsValidSize(size uint64) bool {
	if size < 1 || size > maxValidSize {
		return false
	}
	_, remainder := decompose(size)
	return remainder == 0
}

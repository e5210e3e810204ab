package mmrverify

import (
	"bytes"

	"github.com/HerodotusDev/hdp-verifier-go/digest"
	"github.com/HerodotusDev/hdp-verifier-go/mmrmath"
)

// Commitment is the trusted (root, size, peaks) triple of spec §3. size is
// asserted to be a well-formed MMR size (mmrmath.IsValidSize) and peaks are
// ordered left-to-right, largest mountain first.
type Commitment struct {
	Root  []byte
	Size  uint64
	Peaks [][]byte
}

// Bag folds peaks and size into a single root ("root from peaks", spec
// §4.3). The fold is right-to-left over peaks — the two smallest mountains
// combine first — then the running total is combined with the encoded size
// in one final hash. Reversing the fold direction produces an incompatible,
// non-interoperable root; this is locked by TestBagFoldDirection.
func Bag(hasher digest.Hasher, peaks [][]byte, size uint64) ([]byte, error) {
	if len(peaks) == 0 {
		return nil, ErrEmptyPeaks
	}

	var top []byte
	if len(peaks) == 1 {
		top = peaks[0]
	} else {
		n := len(peaks)
		top = hasher.Hash2(peaks[n-2], peaks[n-1])
		for i := n - 3; i >= 0; i-- {
			top = hasher.Hash2(peaks[i], top)
		}
	}
	return hasher.Hash2(hasher.EncodeSize(size), top), nil
}

// VerifyInclusion implements spec §4.3's verify_inclusion. It recomputes the
// bagged root, checks the peaks count against the leaf count, converts the
// element index to a leaf index, walks the sibling path to a mountain peak,
// and compares the result to that peak.
func VerifyInclusion(hasher digest.Hasher, commitment Commitment, elementIdx uint64, elementValue []byte, siblings [][]byte) (bool, error) {
	if !mmrmath.IsValidSize(commitment.Size) {
		return false, ErrInvalidSize
	}

	bagged, err := Bag(hasher, commitment.Peaks, commitment.Size)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(bagged, commitment.Root) {
		return false, ErrRootMismatch
	}

	leaves := mmrmath.MMRSizeToLeafCount(commitment.Size)
	if mmrmath.LeafCountToPeaksCount(leaves) != len(commitment.Peaks) {
		return false, ErrPeaksCountMismatch
	}

	leafIdx, err := mmrmath.ElementIndexToLeafIndex(elementIdx)
	if err != nil {
		return false, err
	}

	peakIdx, height, err := mmrmath.PeakInfo(commitment.Size, elementIdx)
	if err != nil {
		return false, err
	}
	if uint64(len(siblings)) != height {
		return false, ErrMalformedProof
	}
	if peakIdx >= len(commitment.Peaks) {
		return false, ErrPeaksCountMismatch
	}

	hash := elementValue
	idx := leafIdx
	for _, s := range siblings {
		if idx%2 == 1 {
			hash = hasher.Hash2(s, hash)
		} else {
			hash = hasher.Hash2(hash, s)
		}
		idx >>= 1
	}

	return bytes.Equal(hash, commitment.Peaks[peakIdx]), nil
}

// VerifyHeader is the thin wrapper of spec §4.3: it absorbs the header's
// canonicalised representation (identity chunking for the byte domain, a
// chunked field-element sequence for the algebraic domain — see the header
// package) into a single element value, then delegates to VerifyInclusion.
func VerifyHeader(hasher digest.Hasher, commitment Commitment, leafElementIdx uint64, canonicalChunks [][]byte, siblings [][]byte) (bool, error) {
	elementValue := hasher.HashMany(canonicalChunks)
	return VerifyInclusion(hasher, commitment, leafElementIdx, elementValue, siblings)
}

package mmrverify

import "errors"

var (
	// ErrEmptyPeaks is returned by Bag when the peaks slice is empty.
	ErrEmptyPeaks = errors.New("mmrverify: peaks list is empty")

	// ErrRootMismatch is returned by VerifyInclusion when the commitment's
	// bagged peaks do not equal its root.
	ErrRootMismatch = errors.New("mmrverify: bagged peaks do not match commitment root")

	// ErrPeaksCountMismatch is returned by VerifyInclusion when the number
	// of peaks does not equal popcount(mmr_size_to_leaf_count(size)).
	ErrPeaksCountMismatch = errors.New("mmrverify: peaks count does not match leaf count")

	// ErrMalformedProof is returned by VerifyInclusion when the number of
	// siblings supplied does not match the height of the mountain holding
	// the element.
	ErrMalformedProof = errors.New("mmrverify: wrong number of siblings for element height")

	// ErrInvalidSize is returned when a commitment's size is not a
	// well-formed MMR size (spec §4.2 is_valid_size).
	ErrInvalidSize = errors.New("mmrverify: mmr size is not well formed")
)

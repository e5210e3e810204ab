package trie

import (
	"bytes"

	"github.com/HerodotusDev/hdp-verifier-go/digest"
)

// Verify implements MptVerifier.verify (spec §4.7): walk proofNodes from
// rootDigest toward the trie position addressed by keyBytes, comparing the
// value found there to expectedValue.
//
// expectedValue == nil means the caller is asserting absence of the key:
// Verify succeeds when the walk terminates at an empty branch slot or at a
// leaf/branch holding an empty value, and fails (ErrAbsentChild) only when
// a present value was expected but the walk hits an empty slot.
//
// hasher's HashMany is used as the "keccak-style" single-argument digest of
// an encoded node's raw bytes (spec §4.7 step 2a); for the byte domain this
// is literally Keccak-256 of the node bytes.
func Verify(hasher digest.Hasher, rootDigest []byte, keyBytes []byte, expectedValue []byte, proofNodes [][]byte) (bool, error) {
	remaining := Unpack(keyBytes)
	expectedHash := rootDigest

	var pendingInline []byte
	idx := 0

	for {
		var encodedNode []byte
		if pendingInline != nil {
			encodedNode = pendingInline
			pendingInline = nil
		} else {
			if idx >= len(proofNodes) {
				return false, ErrProofTruncated
			}
			encodedNode = proofNodes[idx]
			idx++
			nodeDigest := hasher.HashMany([][]byte{encodedNode})
			if !bytes.Equal(nodeDigest, expectedHash) {
				return false, ErrHashMismatch
			}
		}

		node, err := Decode(encodedNode)
		if err != nil {
			return false, err
		}

		switch node.Kind {
		case KindBranch:
			if len(remaining) == 0 {
				return valueMatches(node.Value, expectedValue), nil
			}
			n := remaining[0]
			remaining = remaining[1:]
			child := node.Children[n]
			if child.Empty() {
				if expectedValue == nil {
					return true, nil
				}
				return false, ErrAbsentChild
			}
			if child.Inline != nil {
				pendingInline = child.Inline
			} else {
				expectedHash = child.Hash
			}

		case KindExtension:
			if !remaining.HasPrefix(node.Path) {
				return false, ErrPathMismatch
			}
			remaining = remaining[len(node.Path):]
			if node.Child.Inline != nil {
				pendingInline = node.Child.Inline
			} else {
				expectedHash = node.Child.Hash
			}

		case KindLeaf:
			if !Nibbles(node.Path).Equal(remaining) {
				return false, ErrPathMismatch
			}
			return valueMatches(node.Value, expectedValue), nil
		}
	}
}

// valueMatches compares a decoded value to the caller's expectation, where
// a nil expectedValue means "assert absence": satisfied only by an empty
// decoded value.
func valueMatches(got []byte, expected []byte) bool {
	if expected == nil {
		return len(got) == 0
	}
	return bytes.Equal(got, expected)
}

package trie

import "errors"

var (
	// ErrTrieNodeDecode is returned by Decode when the encoded bytes do not
	// match the branch/extension/leaf grammar.
	ErrTrieNodeDecode = errors.New("trie: encoded node violates grammar")

	// ErrHashMismatch is returned by Verify when an encoded node's digest
	// does not equal the digest its parent referenced (or the root at the
	// first step).
	ErrHashMismatch = errors.New("trie: encoded child digest does not match referenced hash")

	// ErrPathMismatch is returned by Verify when an extension or leaf
	// node's partial path disagrees with the remaining key nibbles.
	ErrPathMismatch = errors.New("trie: partial path disagrees with remaining nibbles")

	// ErrAbsentChild is returned by Verify when a branch's queried slot is
	// empty but a present value was expected.
	ErrAbsentChild = errors.New("trie: branch slot empty, expected value absent")

	// ErrProofTruncated is returned by Verify when proof_nodes is
	// exhausted before the walk terminates.
	ErrProofTruncated = errors.New("trie: proof exhausted before reaching queried key")
)

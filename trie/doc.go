// Package trie implements NibbleKey, TrieNodeCodec and MptVerifier (spec
// §4.5–4.7): nibble-level key arithmetic, the branch/extension/leaf node
// grammar of an Ethereum-style Merkle-Patricia Trie, and the root-to-leaf
// proof walk, including the inlined-child short circuit.
//
// The walker (Verify) is ignorant of value semantics — it compares the
// leaf's opaque value bytes to the caller's expected value and returns only
// a verdict; DecodeAccountValue separately parses a verified account value
// into account fields when the caller is verifying account state.
package trie

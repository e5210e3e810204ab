package trie

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// AccountValue is the canonical (nonce, balance, storage_root, code_hash)
// tuple an account leaf's RLP value decodes to (spec §3 AccountLeafValue).
// Nonce is a uint64 and Balance a uint256 rather than a *big.Int, matching
// how a real EVM account record is represented in Go tooling.
type AccountValue struct {
	Nonce       uint64
	Balance     *uint256.Int
	StorageRoot []byte
	CodeHash    []byte
}

// rlpAccount mirrors the wire shape of an Ethereum account leaf value:
// [nonce, balance, storageRoot, codeHash], each a big-endian-minimal RLP
// string except nonce which go-ethereum encodes as a plain RLP integer.
type rlpAccount struct {
	Nonce       uint64
	Balance     []byte
	StorageRoot []byte
	CodeHash    []byte
}

// DecodeAccountValue decodes the opaque value blob of an account leaf (the
// expected value Verify compared against the leaf) into its four fields.
// The walker itself never
// calls this — it stays ignorant of value semantics per §9's "Polymorphic
// trie values" design note; only a caller performing storage verification
// (or inspecting a verified account) invokes it.
func DecodeAccountValue(value []byte) (AccountValue, error) {
	var raw rlpAccount
	if err := rlp.DecodeBytes(value, &raw); err != nil {
		return AccountValue{}, ErrTrieNodeDecode
	}
	if len(raw.StorageRoot) != 32 || len(raw.CodeHash) != 32 {
		return AccountValue{}, ErrTrieNodeDecode
	}

	balance := new(uint256.Int).SetBytes(raw.Balance)
	return AccountValue{
		Nonce:       raw.Nonce,
		Balance:     balance,
		StorageRoot: raw.StorageRoot,
		CodeHash:    raw.CodeHash,
	}, nil
}

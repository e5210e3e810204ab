package header

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
)

// Codec abstracts over the two header instantiations (spec §4.4
// HeaderCodec): a single RLP blob in the byte domain, or a vector of field
// elements in the field domain. Both are represented the same way — a
// chunk vector — so mmrverify.VerifyHeader and compose.Composer never need
// to know which domain they are running over.
type Codec interface {
	// StateRoot extracts the state root digest from a header's chunks.
	StateRoot(chunks [][]byte) ([]byte, error)
	// Canonicalise returns the chunk vector hash_many absorbs to produce
	// the header's MMR leaf value.
	Canonicalise(chunks [][]byte) [][]byte
}

// RLPCodec decodes an RLP-encoded Ethereum block header (the byte-domain
// instantiation) using go-ethereum's own header layout, so the field order
// (parentHash, uncleHash, coinbase, root, ...) never has to be hand rolled.
// Only state_root is returned, but the whole header is decoded, so every
// field after it must also be well formed; a header cut short after
// state_root fails with ErrHeaderDecode. Its chunk vector is always exactly
// one element: the raw RLP bytes.
type RLPCodec struct{}

// StateRoot decodes chunks[0] as a types.Header and returns its Root field,
// 32 bytes. It fails with ErrHeaderDecode on a chunk count other than one,
// or on truncated/structurally invalid RLP.
func (RLPCodec) StateRoot(chunks [][]byte) ([]byte, error) {
	if len(chunks) != 1 {
		return nil, ErrHeaderDecode
	}
	var h types.Header
	if err := rlp.DecodeBytes(chunks[0], &h); err != nil {
		return nil, ErrHeaderDecode
	}
	return h.Root.Bytes(), nil
}

// Canonicalise is identity for the byte instantiation: the core hashes the
// raw RLP bytes as a single chunk (spec §4.3 verify_header).
func (RLPCodec) Canonicalise(chunks [][]byte) [][]byte {
	return chunks
}

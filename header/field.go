package header

// FieldCodec decodes the field-domain packed header encoding: a sequence of
// field elements in the same positional order go-ethereum's RLP header uses
// (parentHash, uncleHash, coinbase, stateRoot, ...), each already encoded as
// a digest.Hasher-compatible element. Only the index up to and including
// stateRoot is read.
type FieldCodec struct{}

// stateRootFieldIndex mirrors go-ethereum's types.Header RLP field order:
// ParentHash=0, UncleHash=1, Coinbase=2, Root=3.
const stateRootFieldIndex = 3

// StateRoot returns the field element at stateRootFieldIndex. It fails with
// ErrHeaderDecode if fewer elements are supplied than that index requires.
func (FieldCodec) StateRoot(chunks [][]byte) ([]byte, error) {
	if len(chunks) <= stateRootFieldIndex {
		return nil, ErrHeaderDecode
	}
	return chunks[stateRootFieldIndex], nil
}

// Canonicalise is identity for the field instantiation: the chunks are
// already a field-element sequence, absorbed directly by hash_many.
func (FieldCodec) Canonicalise(chunks [][]byte) [][]byte {
	return chunks
}

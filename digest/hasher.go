package digest

// Hasher is the HashAbstraction capability (spec §4.1): a two-argument pair
// compression and an absorb-all compression over some digest type. Both
// operations are deterministic; neither reports an error.
//
// Implementations represent a digest as a byte slice regardless of domain:
// KeccakHasher returns 32-byte slices, FieldHasher returns the canonical
// 32-byte big-endian encoding of one BN254 scalar field element. Callers compare
// digests with bytes.Equal, never by domain-specific means.
type Hasher interface {
	// Hash2 compresses two digests into one.
	Hash2(x, y []byte) []byte

	// HashMany absorbs a sequence of inputs into one digest.
	HashMany(xs [][]byte) []byte

	// EncodeSize encodes size as an input suitable for Hash2, used by
	// mmrverify.Bag's final "size-commitment" step.
	EncodeSize(size uint64) []byte

	// Size is the byte length of a digest in this domain.
	Size() int
}

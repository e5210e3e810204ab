package digest

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// KeccakHasher is the byte-domain HashAbstraction instantiation: both the
// input and digest type are 32-byte Keccak-256 outputs.
type KeccakHasher struct {
	h hash.Hash
}

// NewKeccakHasher constructs a KeccakHasher. The underlying hash.Hash is
// reset before every call, following the teacher's pattern of reusing one
// hasher instance rather than allocating per digest (mmr.HashPosPair64,
// urkle.HashLeaf).
func NewKeccakHasher() *KeccakHasher {
	return &KeccakHasher{h: sha3.NewLegacyKeccak256()}
}

func (k *KeccakHasher) Size() int { return 32 }

func (k *KeccakHasher) Hash2(x, y []byte) []byte {
	k.h.Reset()
	k.h.Write(x)
	k.h.Write(y)
	return k.h.Sum(nil)
}

func (k *KeccakHasher) HashMany(xs [][]byte) []byte {
	k.h.Reset()
	for _, x := range xs {
		k.h.Write(x)
	}
	return k.h.Sum(nil)
}

func (k *KeccakHasher) EncodeSize(size uint64) []byte {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], size)
	return buf[:]
}

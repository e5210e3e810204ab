package compose

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethrlp "github.com/ethereum/go-ethereum/rlp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerodotusDev/hdp-verifier-go/digest"
	"github.com/HerodotusDev/hdp-verifier-go/header"
	"github.com/HerodotusDev/hdp-verifier-go/mmrverify"
	"github.com/HerodotusDev/hdp-verifier-go/trie"
)

type fixture struct {
	commitment  mmrverify.Commitment
	headers     []HeaderEntry
	headerIdx   int
	account     AccountCheck
	storage     *StorageCheck
}

func headerRLP(t *testing.T, root common.Hash) []byte {
	t.Helper()
	h := &types.Header{
		Root:       root,
		Number:     big.NewInt(1),
		Difficulty: big.NewInt(1),
		GasLimit:   8000000,
	}
	encoded, err := gethrlp.EncodeToBytes(h)
	if err != nil {
		t.Fatalf("rlp.EncodeToBytes: %v", err)
	}
	return encoded
}

func buildFixture(t *testing.T) (digest.Hasher, fixture) {
	t.Helper()
	h := digest.NewKeccakHasher()

	// --- storage trie: branch(slot 3) -> leaf(path [D], value slotValue)
	slotValue := []byte("storage-slot-value")
	storageLeaf := &trie.Node{Kind: trie.KindLeaf, Path: trie.Nibbles{0xD}, Value: slotValue}
	storageLeafEncoded, err := trie.Encode(storageLeaf)
	if err != nil {
		t.Fatalf("Encode(storageLeaf): %v", err)
	}
	storageLeafHash := h.HashMany([][]byte{storageLeafEncoded})
	storageRoot := &trie.Node{Kind: trie.KindBranch}
	storageRoot.Children[3] = trie.Child{Hash: storageLeafHash}
	storageRootEncoded, err := trie.Encode(storageRoot)
	if err != nil {
		t.Fatalf("Encode(storageRoot): %v", err)
	}
	storageRootDigest := h.HashMany([][]byte{storageRootEncoded})

	// --- account trie: branch(slot 7) -> leaf(path [A,B,C], value accountValue)
	codeHash := bytes.Repeat([]byte{0x5A}, 32)
	accountValue, err := gethrlp.EncodeToBytes(struct {
		Nonce       uint64
		Balance     []byte
		StorageRoot []byte
		CodeHash    []byte
	}{
		Nonce:       1,
		Balance:     []byte{0x01},
		StorageRoot: storageRootDigest,
		CodeHash:    codeHash,
	})
	if err != nil {
		t.Fatalf("encode accountValue: %v", err)
	}
	accountLeaf := &trie.Node{Kind: trie.KindLeaf, Path: trie.Nibbles{0xA, 0xB, 0xC}, Value: accountValue}
	accountLeafEncoded, err := trie.Encode(accountLeaf)
	if err != nil {
		t.Fatalf("Encode(accountLeaf): %v", err)
	}
	if len(accountLeafEncoded) < 32 {
		t.Fatalf("account leaf encoding too short to be hash-referenced: %d bytes", len(accountLeafEncoded))
	}
	accountLeafHash := h.HashMany([][]byte{accountLeafEncoded})
	accountRoot := &trie.Node{Kind: trie.KindBranch}
	accountRoot.Children[7] = trie.Child{Hash: accountLeafHash}
	accountRootEncoded, err := trie.Encode(accountRoot)
	if err != nil {
		t.Fatalf("Encode(accountRoot): %v", err)
	}
	stateRoot := h.HashMany([][]byte{accountRootEncoded})

	// --- two headers, the second committing to stateRoot
	header0RLP := headerRLP(t, common.Hash{})
	header1RLP := headerRLP(t, common.BytesToHash(stateRoot))

	pos1 := h.HashMany([][]byte{header0RLP})
	pos2 := h.HashMany([][]byte{header1RLP})
	pos3 := h.Hash2(pos1, pos2)
	root, err := mmrverify.Bag(h, [][]byte{pos3}, 3)
	if err != nil {
		t.Fatalf("Bag: %v", err)
	}
	commitment := mmrverify.Commitment{Root: root, Size: 3, Peaks: [][]byte{pos3}}

	f := fixture{
		commitment: commitment,
		headers: []HeaderEntry{
			{Chunks: [][]byte{header0RLP}, LeafIdx: 1, Siblings: [][]byte{pos2}},
			{Chunks: [][]byte{header1RLP}, LeafIdx: 2, Siblings: [][]byte{pos1}},
		},
		headerIdx: 1,
		account: AccountCheck{
			AccountKey:    []byte{0x7A, 0xBC},
			Siblings:      [][]byte{accountRootEncoded, accountLeafEncoded},
			ExpectedValue: accountValue,
		},
		storage: &StorageCheck{
			StorageKey:    []byte{0x3D},
			Siblings:      [][]byte{storageRootEncoded, storageLeafEncoded},
			ExpectedValue: slotValue,
		},
	}
	return h, f
}

func TestComposeFullChainSucceeds(t *testing.T) {
	h, f := buildFixture(t)
	c := Composer{Hasher: h, Codec: header.RLPCodec{}}

	ok, err := c.Compose(f.commitment, f.headers, f.headerIdx, f.account, f.storage)
	require.NoError(t, err)
	assert.True(t, ok, "expected full chain to verify")
}

func TestComposeWithoutStorageSucceeds(t *testing.T) {
	h, f := buildFixture(t)
	c := Composer{Hasher: h, Codec: header.RLPCodec{}}

	ok, err := c.Compose(f.commitment, f.headers, f.headerIdx, f.account, nil)
	require.NoError(t, err)
	assert.True(t, ok, "expected account-only chain to verify")
}

func TestComposeHeaderIndexOutOfRange(t *testing.T) {
	h, f := buildFixture(t)
	c := Composer{Hasher: h, Codec: header.RLPCodec{}}

	_, err := c.Compose(f.commitment, f.headers, 5, f.account, nil)
	require.ErrorIs(t, err, ErrHeaderIndexOutOfRange)
}

func TestComposeOneBadHeaderFailsEvenIfUndesignated(t *testing.T) {
	h, f := buildFixture(t)
	c := Composer{Hasher: h, Codec: header.RLPCodec{}}

	// Corrupt header 0's sibling even though header 1 is the designated one:
	// every header must verify, not just the designated one.
	badHeaders := append([]HeaderEntry(nil), f.headers...)
	badHeaders[0] = HeaderEntry{Chunks: f.headers[0].Chunks, LeafIdx: f.headers[0].LeafIdx, Siblings: [][]byte{bytes.Repeat([]byte{0}, 32)}}

	ok, err := c.Compose(f.commitment, badHeaders, f.headerIdx, f.account, nil)
	require.NoError(t, err)
	assert.False(t, ok, "expected verdict false when a non-designated header fails MMR inclusion")
}

func TestComposeStorageRootComesFromAccountNotCaller(t *testing.T) {
	h, f := buildFixture(t)
	c := Composer{Hasher: h, Codec: header.RLPCodec{}}

	// Point the storage check's proof at a root the caller supplies
	// directly rather than the one embedded in the verified account value;
	// since Compose only ever reads the storage root out of the decoded
	// account leaf, proof nodes addressed to a different root fail the
	// hash check rather than being silently trusted.
	wrongStorage := &StorageCheck{
		StorageKey:    f.storage.StorageKey,
		Siblings:      [][]byte{bytes.Repeat([]byte{0x42}, 8)},
		ExpectedValue: f.storage.ExpectedValue,
	}

	_, err := c.Compose(f.commitment, f.headers, f.headerIdx, f.account, wrongStorage)
	require.ErrorIs(t, err, trie.ErrHashMismatch, "expected ErrHashMismatch against the account's own storage root")
}

package compose

import (
	"github.com/HerodotusDev/hdp-verifier-go/digest"
	"github.com/HerodotusDev/hdp-verifier-go/header"
	"github.com/HerodotusDev/hdp-verifier-go/mmrverify"
	"github.com/HerodotusDev/hdp-verifier-go/trie"
)

// HeaderEntry is one header's MMR inclusion proof (spec §3
// HeaderInclusionProof plus the header chunks it is a proof of). Chunks is
// a single-element vector in the byte domain (the raw RLP blob) or a
// multi-element vector in the field domain; header.Codec interprets it.
type HeaderEntry struct {
	Chunks   [][]byte
	LeafIdx  uint64
	Siblings [][]byte
}

// AccountCheck is the account proof and the value expected at its leaf.
type AccountCheck struct {
	AccountKey    []byte
	Siblings      [][]byte
	ExpectedValue []byte
}

// StorageCheck is the optional storage-slot proof and its expected value.
type StorageCheck struct {
	StorageKey    []byte
	Siblings      [][]byte
	ExpectedValue []byte
}

// Composer sequences the MMR, header and MPT checks behind one verdict.
// Hasher fixes the digest domain (byte or field) for every nested check;
// Codec decodes the designated header's state root from its chunks.
type Composer struct {
	Hasher digest.Hasher
	Codec  header.Codec
}

// Compose implements spec §4.8. headerIdx designates which entry in headers
// backs the account check; every header in headers must verify its MMR
// inclusion (ANDed) regardless of which one is designated. If storage is
// non-nil, its root is read from the verified account value, never from an
// external input.
func (c Composer) Compose(commitment mmrverify.Commitment, headers []HeaderEntry, headerIdx int, account AccountCheck, storage *StorageCheck) (bool, error) {
	for _, h := range headers {
		ok, err := mmrverify.VerifyHeader(c.Hasher, commitment, h.LeafIdx, c.Codec.Canonicalise(h.Chunks), h.Siblings)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if headerIdx < 0 || headerIdx >= len(headers) {
		return false, ErrHeaderIndexOutOfRange
	}
	stateRoot, err := c.Codec.StateRoot(headers[headerIdx].Chunks)
	if err != nil {
		return false, err
	}

	accountOK, err := trie.Verify(c.Hasher, stateRoot, account.AccountKey, account.ExpectedValue, account.Siblings)
	if err != nil {
		return false, err
	}
	if !accountOK {
		return false, nil
	}

	if storage == nil {
		return true, nil
	}

	decodedAccount, err := trie.DecodeAccountValue(account.ExpectedValue)
	if err != nil {
		return false, err
	}

	storageOK, err := trie.Verify(c.Hasher, decodedAccount.StorageRoot, storage.StorageKey, storage.ExpectedValue, storage.Siblings)
	if err != nil {
		return false, err
	}
	return storageOK, nil
}

package fixture

import "github.com/google/uuid"

// Record is the decoded form of one on-disk fixture file (spec §6). All hex
// fields in the wire JSON have already been decoded to raw bytes by Load.
type Record struct {
	// RunID correlates this fixture's verification with log output; it is
	// assigned at load time, not carried on the wire.
	RunID uuid.UUID

	Meta     MetaRecord
	Headers  []HeaderRecord
	Accounts []AccountRecord
	Storages []StorageRecord
}

// MetaRecord is the MMR commitment (mmrverify.Commitment's wire shape).
type MetaRecord struct {
	Root  []byte
	Size  uint64
	Peaks [][]byte
}

// HeaderRecord is one header's canonical chunks plus its MMR inclusion
// proof. Chunks holds a single RLP blob for the byte-domain JSON format, or
// a field-element vector for the CBOR field-domain format.
type HeaderRecord struct {
	Chunks     [][]byte
	LeafIndex  uint64
	Siblings   [][]byte
	Designated bool
}

// AccountRecord is one account's trie proof.
type AccountRecord struct {
	Address       []byte
	AccountKey    []byte
	Proof         [][]byte
	ExpectedValue []byte
}

// StorageRecord is one storage slot's trie proof, scoped to an account by
// index into Record.Accounts.
type StorageRecord struct {
	AccountIndex  int
	StorageKey    []byte
	Proof         [][]byte
	ExpectedValue []byte
}

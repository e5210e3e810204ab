package fixture

import (
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// cborRecord mirrors wireRecord but carries raw bytes directly (CBOR has a
// native byte-string type, so the field-domain fixture format skips the
// hex-string indirection the JSON format needs).
type cborRecord struct {
	Meta     cborMeta      `cbor:"meta"`
	Headers  []cborHeader  `cbor:"headers"`
	Accounts []cborAccount `cbor:"accounts"`
	Storages []cborStorage `cbor:"storages"`
}

type cborMeta struct {
	Root  []byte   `cbor:"root"`
	Size  uint64   `cbor:"size"`
	Peaks [][]byte `cbor:"peaks"`
}

type cborHeader struct {
	Chunks     [][]byte `cbor:"chunks"`
	LeafIndex  uint64   `cbor:"leaf_index"`
	Siblings   [][]byte `cbor:"siblings"`
	Designated bool     `cbor:"designated"`
}

type cborAccount struct {
	Address       []byte   `cbor:"address"`
	AccountKey    []byte   `cbor:"account_key"`
	Proof         [][]byte `cbor:"proof"`
	ExpectedValue []byte   `cbor:"expected_value"`
}

type cborStorage struct {
	AccountIndex  int      `cbor:"account_index"`
	StorageKey    []byte   `cbor:"storage_key"`
	Proof         [][]byte `cbor:"proof"`
	ExpectedValue []byte   `cbor:"expected_value"`
}

// LoadCBOR reads a field-domain fixture: the same shape as the JSON wire
// format, but CBOR-encoded and with header chunks instead of RLP bytes
// (field-domain headers are canonicalised as a vector of field elements
// rather than a single RLP blob; header.FieldCodec consumes these chunks
// directly). There is no schema validation step here: CBOR decoding checks
// the types of the fields present, but a missing field is left at its zero
// value and the JSON Schema's required-field and minimum checks are not
// applied.
func LoadCBOR(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}

	var cr cborRecord
	if err := cbor.Unmarshal(data, &cr); err != nil {
		return Record{}, err
	}

	headers := make([]HeaderRecord, len(cr.Headers))
	for i, h := range cr.Headers {
		headers[i] = HeaderRecord{
			Chunks:     h.Chunks,
			LeafIndex:  h.LeafIndex,
			Siblings:   h.Siblings,
			Designated: h.Designated,
		}
	}

	accounts := make([]AccountRecord, len(cr.Accounts))
	for i, a := range cr.Accounts {
		accounts[i] = AccountRecord{
			Address:       a.Address,
			AccountKey:    a.AccountKey,
			Proof:         a.Proof,
			ExpectedValue: a.ExpectedValue,
		}
	}

	storages := make([]StorageRecord, len(cr.Storages))
	for i, s := range cr.Storages {
		storages[i] = StorageRecord{
			AccountIndex:  s.AccountIndex,
			StorageKey:    s.StorageKey,
			Proof:         s.Proof,
			ExpectedValue: s.ExpectedValue,
		}
	}

	return Record{
		RunID: uuid.New(),
		Meta: MetaRecord{
			Root:  cr.Meta.Root,
			Size:  cr.Meta.Size,
			Peaks: cr.Meta.Peaks,
		},
		Headers:  headers,
		Accounts: accounts,
		Storages: storages,
	}, nil
}

package fixture

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// wireMeta, wireHeader, wireAccount and wireStorage mirror schemaJSON's shape
// field-for-field; Load decodes into these before hex-decoding into Record.
type wireMeta struct {
	Root  string   `json:"root"`
	Size  uint64   `json:"size"`
	Peaks []string `json:"peaks"`
}

type wireHeader struct {
	RLP        string   `json:"rlp"`
	LeafIndex  uint64   `json:"leaf_index"`
	Siblings   []string `json:"siblings"`
	Designated bool     `json:"designated"`
}

type wireAccount struct {
	Address       string   `json:"address"`
	AccountKey    string   `json:"account_key"`
	Proof         []string `json:"proof"`
	ExpectedValue string   `json:"expected_value"`
}

type wireStorage struct {
	AccountIndex  int      `json:"account_index"`
	StorageKey    string   `json:"storage_key"`
	Proof         []string `json:"proof"`
	ExpectedValue string   `json:"expected_value"`
}

type wireRecord struct {
	Meta     wireMeta      `json:"meta"`
	Headers  []wireHeader  `json:"headers"`
	Accounts []wireAccount `json:"accounts"`
	Storages []wireStorage `json:"storages"`
}

// Loader reads and validates fixture files against schemaJSON before
// decoding them into Record. Construct one with NewLoader; the zero value
// has no compiled schema.
type Loader struct {
	schema *jsonschema.Schema
}

// NewLoader compiles schemaJSON once so repeated Load calls reuse it.
func NewLoader() (*Loader, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("fixture.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	schema, err := compiler.Compile("fixture.schema.json")
	if err != nil {
		return nil, err
	}
	return &Loader{schema: schema}, nil
}

// Load reads the file at path, validates it against schemaJSON, and decodes
// it into a Record with every hex field turned into raw bytes. Each call
// assigns a fresh Record.RunID for log correlation.
func (l *Loader) Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}

	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return Record{}, err
	}
	if err := l.schema.Validate(instance); err != nil {
		return Record{}, wrapSchemaErr(err)
	}

	var wr wireRecord
	if err := json.Unmarshal(data, &wr); err != nil {
		return Record{}, err
	}

	return decodeRecord(wr)
}

func wrapSchemaErr(err error) error {
	return &schemaError{cause: err}
}

type schemaError struct {
	cause error
}

func (e *schemaError) Error() string { return ErrSchemaValidation.Error() + ": " + e.cause.Error() }
func (e *schemaError) Unwrap() error { return ErrSchemaValidation }

func decodeRecord(wr wireRecord) (Record, error) {
	root, err := decodeHex(wr.Meta.Root)
	if err != nil {
		return Record{}, err
	}
	peaks, err := decodeHexSlice(wr.Meta.Peaks)
	if err != nil {
		return Record{}, err
	}

	headers := make([]HeaderRecord, len(wr.Headers))
	for i, wh := range wr.Headers {
		rlpBytes, err := decodeHex(wh.RLP)
		if err != nil {
			return Record{}, err
		}
		siblings, err := decodeHexSlice(wh.Siblings)
		if err != nil {
			return Record{}, err
		}
		headers[i] = HeaderRecord{
			Chunks:     [][]byte{rlpBytes},
			LeafIndex:  wh.LeafIndex,
			Siblings:   siblings,
			Designated: wh.Designated,
		}
	}

	accounts := make([]AccountRecord, len(wr.Accounts))
	for i, wa := range wr.Accounts {
		address, err := decodeHex(wa.Address)
		if err != nil {
			return Record{}, err
		}
		accountKey, err := decodeHex(wa.AccountKey)
		if err != nil {
			return Record{}, err
		}
		proof, err := decodeHexSlice(wa.Proof)
		if err != nil {
			return Record{}, err
		}
		expectedValue, err := decodeHex(wa.ExpectedValue)
		if err != nil {
			return Record{}, err
		}
		accounts[i] = AccountRecord{
			Address:       address,
			AccountKey:    accountKey,
			Proof:         proof,
			ExpectedValue: expectedValue,
		}
	}

	storages := make([]StorageRecord, len(wr.Storages))
	for i, ws := range wr.Storages {
		storageKey, err := decodeHex(ws.StorageKey)
		if err != nil {
			return Record{}, err
		}
		proof, err := decodeHexSlice(ws.Proof)
		if err != nil {
			return Record{}, err
		}
		expectedValue, err := decodeHex(ws.ExpectedValue)
		if err != nil {
			return Record{}, err
		}
		storages[i] = StorageRecord{
			AccountIndex:  ws.AccountIndex,
			StorageKey:    storageKey,
			Proof:         proof,
			ExpectedValue: expectedValue,
		}
	}

	return Record{
		RunID: uuid.New(),
		Meta: MetaRecord{
			Root:  root,
			Size:  wr.Meta.Size,
			Peaks: peaks,
		},
		Headers:  headers,
		Accounts: accounts,
		Storages: storages,
	}, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrHexDecode
	}
	return b, nil
}

func decodeHexSlice(ss []string) ([][]byte, error) {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		b, err := decodeHex(s)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

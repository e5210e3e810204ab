package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFixtureJSON = `{
  "meta": {
    "root": "0xaabbcc",
    "size": 3,
    "peaks": ["0x112233"]
  },
  "headers": [
    {"rlp": "0xdeadbeef", "leaf_index": 1, "siblings": ["0x01"], "designated": false},
    {"rlp": "0xf00dcafe", "leaf_index": 2, "siblings": ["0x02"], "designated": true}
  ],
  "accounts": [
    {"address": "0x1234", "account_key": "0x5678", "proof": ["0xaa", "0xbb"], "expected_value": "0xcc"}
  ],
  "storages": [
    {"account_index": 0, "storage_key": "0x9a", "proof": ["0xdd"], "expected_value": "0xee"}
  ]
}`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidFixture(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	path := writeFixture(t, validFixtureJSON)

	rec, err := loader.Load(path)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.RunID.String())
	assert.EqualValues(t, 3, rec.Meta.Size)
	require.Len(t, rec.Meta.Peaks, 1)
	assert.Equal(t, byte(0x11), rec.Meta.Peaks[0][0])
	assert.Len(t, rec.Headers, 2)
	assert.Equal(t, 1, rec.DesignatedHeaderIndex())
	require.Len(t, rec.Accounts, 1)
	assert.NotEmpty(t, rec.Accounts[0].AccountKey)

	checks := rec.StorageChecks(0)
	assert.Len(t, checks, 1)
	assert.Empty(t, rec.StorageChecks(1))
}

func TestLoadMissingRequiredFieldFailsSchema(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	path := writeFixture(t, `{"meta": {"root": "0xaa", "size": 1, "peaks": ["0xbb"]}}`)

	_, err = loader.Load(path)
	assert.Error(t, err, "expected schema validation error for missing headers/accounts")
}

func TestLoadMalformedHexFails(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	bad := `{
		"meta": {"root": "0xzz", "size": 1, "peaks": ["0x01"]},
		"headers": [{"rlp": "0x01", "leaf_index": 0, "siblings": []}],
		"accounts": [{"address": "0x01", "account_key": "0x01", "proof": [], "expected_value": "0x01"}]
	}`
	path := writeFixture(t, bad)

	_, err = loader.Load(path)
	require.ErrorIs(t, err, ErrHexDecode)
}

func TestLoadMissingFile(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	_, err = loader.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err, "expected error for missing file")
}

func TestRecordCommitmentAndHeaderEntries(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	rec, err := loader.Load(writeFixture(t, validFixtureJSON))
	require.NoError(t, err)

	commitment := rec.Commitment()
	assert.Equal(t, rec.Meta.Size, commitment.Size)

	entries := rec.HeaderEntries()
	require.Len(t, entries, len(rec.Headers))
	for i, e := range entries {
		assert.Equal(t, rec.Headers[i].LeafIndex, e.LeafIdx, "entry %d LeafIdx mismatch", i)
	}

	ac := rec.AccountCheck(0)
	assert.NotEmpty(t, ac.AccountKey)
}

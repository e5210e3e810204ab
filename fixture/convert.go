package fixture

import (
	"github.com/HerodotusDev/hdp-verifier-go/compose"
	"github.com/HerodotusDev/hdp-verifier-go/mmrverify"
)

// Commitment converts the fixture's meta block to mmrverify.Commitment.
func (r Record) Commitment() mmrverify.Commitment {
	return mmrverify.Commitment{Root: r.Meta.Root, Size: r.Meta.Size, Peaks: r.Meta.Peaks}
}

// HeaderEntries converts every header record to compose.HeaderEntry, in
// fixture order.
func (r Record) HeaderEntries() []compose.HeaderEntry {
	out := make([]compose.HeaderEntry, len(r.Headers))
	for i, h := range r.Headers {
		out[i] = compose.HeaderEntry{Chunks: h.Chunks, LeafIdx: h.LeafIndex, Siblings: h.Siblings}
	}
	return out
}

// DesignatedHeaderIndex returns the index of the header marked Designated,
// or 0 if none is marked (the first header is the default designation).
func (r Record) DesignatedHeaderIndex() int {
	for i, h := range r.Headers {
		if h.Designated {
			return i
		}
	}
	return 0
}

// AccountCheck converts the account record at index i.
func (r Record) AccountCheck(i int) compose.AccountCheck {
	a := r.Accounts[i]
	return compose.AccountCheck{AccountKey: a.AccountKey, Siblings: a.Proof, ExpectedValue: a.ExpectedValue}
}

// StorageChecks returns every storage check scoped to account index
// accountIdx, in fixture order.
func (r Record) StorageChecks(accountIdx int) []compose.StorageCheck {
	var out []compose.StorageCheck
	for _, s := range r.Storages {
		if s.AccountIndex != accountIdx {
			continue
		}
		out = append(out, compose.StorageCheck{StorageKey: s.StorageKey, Siblings: s.Proof, ExpectedValue: s.ExpectedValue})
	}
	return out
}

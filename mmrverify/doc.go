// Package mmrverify implements MmrVerifier (spec §4.3): bagging a set of
// peaks into a single root, and walking an inclusion proof from an element
// up to its mountain's peak.
//
// Both operations are parameterised over a digest.Hasher so the same code
// runs unmodified for the byte-domain and field-domain instantiations, per
// the design note "Two hash families, one algorithm."
package mmrverify

// Package digest supplies the two hash-domain instantiations the verifier
// core is parameterised over: a 256-bit byte digest (Keccak-256) and a
// field-element digest (a MiMC sponge over the BN254 scalar field, standing
// in for the algebraic sponge an arithmetised deployment would use).
//
// Both instantiations satisfy the same Hasher interface, so mmrverify and
// trie never need to know which domain they are running over.
package digest

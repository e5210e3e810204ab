// Package compose implements ProofComposer (spec §4.8): it sequences an
// MMR inclusion check per header, then an account trie check under one
// caller-designated header's state root, then an optional storage trie
// check under the account's own storage root.
//
// Per §10's resolution of the "single-header-for-account coupling" open
// question, the caller always designates which header backs the account
// check; Compose ANDs every header's MMR verdict but never "picks" a header
// on the caller's behalf, and a storage root is only ever read out of the
// account leaf value that was itself just verified (§9 "Storage
// verification linkage") — never accepted as a separate input.
package compose

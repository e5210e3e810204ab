// Package mmrmath provides the pure integer arithmetic that underlies a
// Merkle Mountain Range: bit counting, mountain decomposition, peak location
// and the index/size validity checks the verifier leans on before it ever
// touches a hash.
//
// Every function here is total on its documented domain and free of
// allocation; none of them touch a store, a hasher, or the network. This
// mirrors the "low level api places a burden of knowledge on the caller"
// approach of the reference MMR implementations this package descends from:
// the functions do exactly the arithmetic they say and nothing more.
package mmrmath

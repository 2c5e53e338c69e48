// Package blake3 implements the BLAKE3 cryptographic hash function,
// the content-addressing primitive of the build engine: every
// artifact, input file and cache key is identified by a digest
// computed here.
//
// The package provides incremental hashing (hash.Hash compliant),
// keyed hashing, context-bound key derivation, extendable output with
// arbitrary seeking, and a batched path for hashing many independent
// small inputs in parallel SIMD lanes. Digests are raw fixed-length
// bytes; no encoding is applied at this layer.
//
// A Hasher is exclusively owned by its caller and must not be shared
// across goroutines. Hashing independent data concurrently is safe
// with independent Hasher instances.
package blake3

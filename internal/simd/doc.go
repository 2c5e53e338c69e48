// Package simd provides the BLAKE3 compression primitive with runtime
// CPU dispatch.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2, SSE4.1, SSE2
//   - ARM64: NEON
//
// Runtime CPU feature detection selects the widest available backend.
// Set BUILDER_SIMD to a backend name (e.g. "avx2", "portable") to
// override selection; an override naming an unavailable backend is
// ignored.
//
// Every backend is a pure Go rendering of the same lane-structured
// kernel and compiles on every platform, so the cross-backend
// equivalence suite always runs in full; only selection is gated on the
// host CPU. All backends produce byte-identical output for identical
// input - that is the correctness contract of this package.
//
// # Operations
//
//   - Compress: single-block compression (scalar ABI, all backends)
//   - HashMany: lane-parallel hashing of independent equal-length inputs
//   - Capabilities: immutable one-time CPU capability snapshot
package simd

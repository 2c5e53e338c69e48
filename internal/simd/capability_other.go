//go:build !amd64 && !arm64

package simd

// Unrecognized architectures get a snapshot with no accelerated
// features; dispatch falls back to the portable backend.
func detectArch(info *Info) {}

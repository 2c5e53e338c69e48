package simd

import (
	"runtime"
	"strings"
	"sync"
)

// ISA identifies one compression backend.
type ISA uint8

const (
	// Portable is the pure scalar implementation, available everywhere.
	Portable ISA = iota
	// SSE2 is the x86-64 baseline backend (single lane).
	SSE2
	// SSE41 is the x86-64 SSE4.1 backend (128-bit vectors).
	SSE41
	// AVX2 is the x86-64 AVX2 backend (256-bit vectors, 8 lanes).
	AVX2
	// AVX512 is the x86-64 AVX-512 backend (512-bit vectors, 16 lanes).
	AVX512
	// NEON is the ARM64 backend (128-bit vectors, 4 lanes).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Portable:
		return "portable"
	case SSE2:
		return "sse2"
	case SSE41:
		return "sse41"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portable", "generic":
		return Portable, true
	case "sse2":
		return SSE2, true
	case "sse41", "sse4.1":
		return SSE41, true
	case "avx2":
		return AVX2, true
	case "avx512", "avx-512":
		return AVX512, true
	case "neon", "asimd":
		return NEON, true
	default:
		return Portable, false
	}
}

// Info is an immutable snapshot of the host CPU's capabilities. It is
// computed at most once per process; all callers share the same value.
type Info struct {
	Arch      string
	Vendor    string
	Brand     string
	CacheLine int
	L2Cache   int // bytes, -1 if unknown
	L3Cache   int // bytes, -1 if unknown

	HasSSE2   bool
	HasSSE41  bool
	HasAVX2   bool
	HasAVX512 bool // F+VL
	HasNEON   bool
}

// Supports reports whether the snapshot permits running the given ISA.
// Portable is always supported; an unrecognized architecture supports
// nothing else.
func (info Info) Supports(isa ISA) bool {
	switch isa {
	case Portable:
		return true
	case SSE2:
		return info.HasSSE2
	case SSE41:
		return info.HasSSE41
	case AVX2:
		return info.HasAVX2
	case AVX512:
		return info.HasAVX512
	case NEON:
		return info.HasNEON
	default:
		return false
	}
}

// best returns the preferred ISA for the snapshot: AVX-512 > AVX2 >
// SSE4.1 > SSE2 > portable on x86-64, NEON > portable on ARM64.
func (info Info) best() ISA {
	switch {
	case info.HasAVX512:
		return AVX512
	case info.HasAVX2:
		return AVX2
	case info.HasSSE41:
		return SSE41
	case info.HasSSE2:
		return SSE2
	case info.HasNEON:
		return NEON
	}
	return Portable
}

// Capabilities returns the host capability snapshot, computing it on
// first call. Safe under concurrent first access.
var Capabilities = sync.OnceValue(func() Info {
	info := Info{
		Arch:      runtime.GOARCH,
		CacheLine: 64,
		L2Cache:   -1,
		L3Cache:   -1,
	}
	detectArch(&info)
	return info
})

package simd

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// envOverride names the environment variable that forces a specific
// backend. An override naming an unavailable backend is ignored.
const envOverride = "BUILDER_SIMD"

type compressFn func(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32)

type hashManyFn func(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte)

// Backend binds one compression implementation and one batch-hash
// implementation. Backends are immutable; the active backend is
// resolved once per process and shared read-only by every hasher.
type Backend struct {
	isa      ISA
	lanes    int
	compress compressFn
	hashMany hashManyFn
}

// ISA returns the backend's instruction set.
func (b *Backend) ISA() ISA { return b.isa }

// Lanes returns the number of inputs the batch path processes per pass.
func (b *Backend) Lanes() int { return b.lanes }

// Available reports whether the host CPU can run this backend.
func (b *Backend) Available() bool { return Capabilities().Supports(b.isa) }

func (b *Backend) String() string { return b.isa.String() }

// Compress runs the compression permutation: 7 rounds of the fixed
// column-then-diagonal schedule over a 16-word state built from cv, the
// block, the counter, the block length and the flag bits, finalized by
// the feed-forward XOR. out[0:8] is the new chaining value; out[8:16]
// is the XOF feed-forward half.
func (b *Backend) Compress(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	b.compress(cv, block, blockLen, counter, flags, out)
}

// HashMany hashes len(inputs) independent inputs of blocks full blocks
// each, lane-parallel, writing one 32-byte chaining value per input to
// out. Each block's counter is counter, or counter+blockIndex when
// incrementCounter is set. flagsStart is ORed into the first block's
// flags and flagsEnd into the last block's.
//
// Inputs are read-only; concurrent calls on disjoint out buffers are
// safe.
func (b *Backend) HashMany(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) error {
	if blocks < 1 {
		return fmt.Errorf("%w: %d blocks per input", ErrBatchLength, blocks)
	}
	if len(out) != CVLen*len(inputs) {
		return fmt.Errorf("%w: %d inputs need a %d-byte output buffer, got %d",
			ErrBatchLength, len(inputs), CVLen*len(inputs), len(out))
	}
	for i, input := range inputs {
		if len(input) < blocks*BlockLen {
			return fmt.Errorf("%w: input %d is %d bytes, need %d",
				ErrBatchLength, i, len(input), blocks*BlockLen)
		}
	}
	if len(inputs) == 0 {
		return nil
	}
	b.hashMany(inputs, blocks, key, counter, incrementCounter, flags, flagsStart, flagsEnd, out)
	return nil
}

// The full backend set, in dispatch preference order. All of them are
// compiled on every platform; Available gates selection only.
var (
	portableBackend = &Backend{isa: Portable, lanes: 1, compress: compressPortable, hashMany: hashManyPortable}
	sse2Backend     = &Backend{isa: SSE2, lanes: 1, compress: compressSSE2, hashMany: hashManySSE2}
	sse41Backend    = &Backend{isa: SSE41, lanes: 1, compress: compressSSE41, hashMany: hashManySSE41}
	avx2Backend     = &Backend{isa: AVX2, lanes: 8, compress: compressAVX2, hashMany: hashManyAVX2}
	avx512Backend   = &Backend{isa: AVX512, lanes: 16, compress: compressAVX512, hashMany: hashManyAVX512}
	neonBackend     = &Backend{isa: NEON, lanes: 4, compress: compressNEON, hashMany: hashManyNEON}
)

// Backends returns every compiled backend, widest first. Tests and
// benchmarks use this to bypass dispatch and drive one backend
// directly.
func Backends() []*Backend {
	return []*Backend{
		avx512Backend,
		avx2Backend,
		sse41Backend,
		sse2Backend,
		neonBackend,
		portableBackend,
	}
}

func backendFor(isa ISA) *Backend {
	for _, b := range Backends() {
		if b.isa == isa {
			return b
		}
	}
	return portableBackend
}

// resolve maps a capability snapshot and an optional override string to
// one backend. Split out from Active so selection is testable without
// touching process-wide state.
func resolve(info Info, override string) *Backend {
	if override != "" {
		if isa, ok := ParseISA(override); ok && info.Supports(isa) {
			return backendFor(isa)
		}
	}
	return backendFor(info.best())
}

// Active returns the process-wide backend binding, resolving it on
// first use. Concurrent first calls observe the same result; the
// binding never changes afterwards.
var Active = sync.OnceValue(func() *Backend {
	b := resolve(Capabilities(), os.Getenv(envOverride))
	slog.Debug("hash backend resolved",
		"backend", b.isa.String(),
		"lanes", b.lanes,
		"arch", Capabilities().Arch)
	return b
})

// Compress invokes the active backend's compression primitive.
func Compress(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	Active().Compress(cv, block, blockLen, counter, flags, out)
}

// HashMany invokes the active backend's batch path.
func HashMany(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) error {
	return Active().HashMany(inputs, blocks, key, counter, incrementCounter, flags, flagsStart, flagsEnd, out)
}

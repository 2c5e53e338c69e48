package simd

// The SSE2 backend exists for ABI uniformity: 128-bit vectors buy
// nothing for a single-block compression, so it delegates to the
// scalar kernel, and its batch path is the serial loop.

func compressSSE2(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	compressPortable(cv, block, blockLen, counter, flags, out)
}

func hashManySSE2(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) {
	hashManyPortable(inputs, blocks, key, counter, incrementCounter, flags, flagsStart, flagsEnd, out)
}

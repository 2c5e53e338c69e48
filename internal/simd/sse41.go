package simd

// SSE4.1 backend: the compression permutation over 128-bit vectors
// (4 x uint32 lanes). The scalar Compress entry point broadcasts its
// operands across all four lanes and extracts lane 0, mirroring the
// vector register discipline of the hand-written original. The batch
// path stays serial; four lanes only pay off at AVX2 widths and above.

type u32x4 [4]uint32

func add4(a, b u32x4) u32x4 {
	return u32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func xor4(a, b u32x4) u32x4 {
	return u32x4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func rotr4(a u32x4, n uint32) u32x4 {
	return u32x4{
		a[0]>>n | a[0]<<(32-n),
		a[1]>>n | a[1]<<(32-n),
		a[2]>>n | a[2]<<(32-n),
		a[3]>>n | a[3]<<(32-n),
	}
}

func broadcast4(x uint32) u32x4 {
	return u32x4{x, x, x, x}
}

func g4(s *[16]u32x4, a, b, c, d int, mx, my u32x4) {
	s[a] = add4(s[a], add4(s[b], mx))
	s[d] = rotr4(xor4(s[d], s[a]), 16)
	s[c] = add4(s[c], s[d])
	s[b] = rotr4(xor4(s[b], s[c]), 12)
	s[a] = add4(s[a], add4(s[b], my))
	s[d] = rotr4(xor4(s[d], s[a]), 8)
	s[c] = add4(s[c], s[d])
	s[b] = rotr4(xor4(s[b], s[c]), 7)
}

func round4(s *[16]u32x4, m *[16]u32x4, r int) {
	sched := &msgSchedule[r]
	g4(s, 0, 4, 8, 12, m[sched[0]], m[sched[1]])
	g4(s, 1, 5, 9, 13, m[sched[2]], m[sched[3]])
	g4(s, 2, 6, 10, 14, m[sched[4]], m[sched[5]])
	g4(s, 3, 7, 11, 15, m[sched[6]], m[sched[7]])
	g4(s, 0, 5, 10, 15, m[sched[8]], m[sched[9]])
	g4(s, 1, 6, 11, 12, m[sched[10]], m[sched[11]])
	g4(s, 2, 7, 8, 13, m[sched[12]], m[sched[13]])
	g4(s, 3, 4, 9, 14, m[sched[14]], m[sched[15]])
}

func compressSSE41(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	var m [16]u32x4
	for i := range m {
		m[i] = broadcast4(loadWord(block, i))
	}

	var s [16]u32x4
	for i := 0; i < 8; i++ {
		s[i] = broadcast4(cv[i])
	}
	for i := 0; i < 4; i++ {
		s[8+i] = broadcast4(IV[i])
	}
	s[12] = broadcast4(uint32(counter))
	s[13] = broadcast4(uint32(counter >> 32))
	s[14] = broadcast4(blockLen)
	s[15] = broadcast4(flags)

	for r := 0; r < 7; r++ {
		round4(&s, &m, r)
	}

	for i := 0; i < 8; i++ {
		out[i] = xor4(s[i], s[i+8])[0]
		out[i+8] = xor4(s[i+8], broadcast4(cv[i]))[0]
	}
}

func hashManySSE41(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) {
	hashManyPortable(inputs, blocks, key, counter, incrementCounter, flags, flagsStart, flagsEnd, out)
}

package simd

import (
	"encoding/binary"
	"math/bits"
)

func g(s *[16]uint32, a, b, c, d int, x, y uint32) {
	s[a] = s[a] + s[b] + x
	s[d] = bits.RotateLeft32(s[d]^s[a], -16)
	s[c] = s[c] + s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], -12)
	s[a] = s[a] + s[b] + y
	s[d] = bits.RotateLeft32(s[d]^s[a], -8)
	s[c] = s[c] + s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], -7)
}

func roundFn(s *[16]uint32, m *[16]uint32, r int) {
	sched := &msgSchedule[r]
	// Mix columns.
	g(s, 0, 4, 8, 12, m[sched[0]], m[sched[1]])
	g(s, 1, 5, 9, 13, m[sched[2]], m[sched[3]])
	g(s, 2, 6, 10, 14, m[sched[4]], m[sched[5]])
	g(s, 3, 7, 11, 15, m[sched[6]], m[sched[7]])
	// Mix diagonals.
	g(s, 0, 5, 10, 15, m[sched[8]], m[sched[9]])
	g(s, 1, 6, 11, 12, m[sched[10]], m[sched[11]])
	g(s, 2, 7, 8, 13, m[sched[12]], m[sched[13]])
	g(s, 3, 4, 9, 14, m[sched[14]], m[sched[15]])
}

// compressPortable is the scalar reference kernel. Every other backend
// must produce byte-identical output.
func compressPortable(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	s := [16]uint32{
		cv[0], cv[1], cv[2], cv[3],
		cv[4], cv[5], cv[6], cv[7],
		IV[0], IV[1], IV[2], IV[3],
		uint32(counter), uint32(counter >> 32), blockLen, flags,
	}

	for r := 0; r < 7; r++ {
		roundFn(&s, &m, r)
	}

	for i := 0; i < 8; i++ {
		out[i] = s[i] ^ s[i+8]
		out[i+8] = s[i+8] ^ cv[i]
	}
}

// hashManyPortable hashes each input serially, one block at a time.
func hashManyPortable(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) {
	var block [64]byte
	var words [16]uint32
	for i, input := range inputs {
		cv := *key
		for b := 0; b < blocks; b++ {
			copy(block[:], input[b*BlockLen:(b+1)*BlockLen])
			blockFlags := flags
			if b == 0 {
				blockFlags |= flagsStart
			}
			if b == blocks-1 {
				blockFlags |= flagsEnd
			}
			ctr := counter
			if incrementCounter {
				ctr += uint64(b)
			}
			compressPortable(&cv, &block, BlockLen, ctr, blockFlags, &words)
			copy(cv[:], words[:8])
		}
		storeCV(out[i*CVLen:], &cv)
	}
}

func loadWord(block *[64]byte, i int) uint32 {
	return binary.LittleEndian.Uint32(block[4*i:])
}

func storeCV(dst []byte, cv *[8]uint32) {
	for i, w := range cv {
		binary.LittleEndian.PutUint32(dst[4*i:], w)
	}
}

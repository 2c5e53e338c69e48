package simd

import "encoding/binary"

// NEON backend: 128-bit vectors, 4 x uint32 lanes. NEON shifts take
// compile-time constants, so the original carries one rotation helper
// per amount; the same shape is kept here.

func neonRotr16(x u32x4) u32x4 {
	return u32x4{x[0]>>16 | x[0]<<16, x[1]>>16 | x[1]<<16, x[2]>>16 | x[2]<<16, x[3]>>16 | x[3]<<16}
}

func neonRotr12(x u32x4) u32x4 {
	return u32x4{x[0]>>12 | x[0]<<20, x[1]>>12 | x[1]<<20, x[2]>>12 | x[2]<<20, x[3]>>12 | x[3]<<20}
}

func neonRotr8(x u32x4) u32x4 {
	return u32x4{x[0]>>8 | x[0]<<24, x[1]>>8 | x[1]<<24, x[2]>>8 | x[2]<<24, x[3]>>8 | x[3]<<24}
}

func neonRotr7(x u32x4) u32x4 {
	return u32x4{x[0]>>7 | x[0]<<25, x[1]>>7 | x[1]<<25, x[2]>>7 | x[2]<<25, x[3]>>7 | x[3]<<25}
}

func gNEON(s *[16]u32x4, a, b, c, d int, mx, my u32x4) {
	s[a] = add4(s[a], add4(s[b], mx))
	s[d] = neonRotr16(xor4(s[d], s[a]))
	s[c] = add4(s[c], s[d])
	s[b] = neonRotr12(xor4(s[b], s[c]))
	s[a] = add4(s[a], add4(s[b], my))
	s[d] = neonRotr8(xor4(s[d], s[a]))
	s[c] = add4(s[c], s[d])
	s[b] = neonRotr7(xor4(s[b], s[c]))
}

func roundNEON(s *[16]u32x4, m *[16]u32x4, r int) {
	sched := &msgSchedule[r]
	gNEON(s, 0, 4, 8, 12, m[sched[0]], m[sched[1]])
	gNEON(s, 1, 5, 9, 13, m[sched[2]], m[sched[3]])
	gNEON(s, 2, 6, 10, 14, m[sched[4]], m[sched[5]])
	gNEON(s, 3, 7, 11, 15, m[sched[6]], m[sched[7]])
	gNEON(s, 0, 5, 10, 15, m[sched[8]], m[sched[9]])
	gNEON(s, 1, 6, 11, 12, m[sched[10]], m[sched[11]])
	gNEON(s, 2, 7, 8, 13, m[sched[12]], m[sched[13]])
	gNEON(s, 3, 4, 9, 14, m[sched[14]], m[sched[15]])
}

func compressNEON(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
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
		roundNEON(&s, &m, r)
	}

	for i := 0; i < 8; i++ {
		out[i] = xor4(s[i], s[i+8])[0]
		out[i+8] = xor4(s[i+8], broadcast4(cv[i]))[0]
	}
}

func hashManyNEON(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) {
	for base := 0; base < len(inputs); base += 4 {
		n := len(inputs) - base
		if n > 4 {
			n = 4
		}

		var cvv [8]u32x4
		for i := range cvv {
			cvv[i] = broadcast4(key[i])
		}

		for b := 0; b < blocks; b++ {
			var m [16]u32x4
			for w := 0; w < 16; w++ {
				var lanes u32x4
				for lane := 0; lane < n; lane++ {
					lanes[lane] = binary.LittleEndian.Uint32(inputs[base+lane][b*BlockLen+4*w:])
				}
				m[w] = lanes
			}

			var s [16]u32x4
			copy(s[:8], cvv[:])
			for i := 0; i < 4; i++ {
				s[8+i] = broadcast4(IV[i])
			}
			ctr := counter
			if incrementCounter {
				ctr += uint64(b)
			}
			s[12] = broadcast4(uint32(ctr))
			s[13] = broadcast4(uint32(ctr >> 32))
			s[14] = broadcast4(BlockLen)
			blockFlags := flags
			if b == 0 {
				blockFlags |= flagsStart
			}
			if b == blocks-1 {
				blockFlags |= flagsEnd
			}
			s[15] = broadcast4(blockFlags)

			for r := 0; r < 7; r++ {
				roundNEON(&s, &m, r)
			}

			for i := 0; i < 8; i++ {
				cvv[i] = xor4(s[i], s[i+8])
			}
		}

		for lane := 0; lane < n; lane++ {
			o := out[(base+lane)*CVLen:]
			for i := 0; i < 8; i++ {
				binary.LittleEndian.PutUint32(o[4*i:], cvv[i][lane])
			}
		}
	}
}

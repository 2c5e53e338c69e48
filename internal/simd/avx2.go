package simd

import "encoding/binary"

// AVX2 backend: 256-bit vectors, 8 x uint32 lanes. The batch path
// transposes eight independent inputs into lane-major message vectors
// and runs the permutation once per block position across all eight.

type u32x8 [8]uint32

func add8(a, b u32x8) u32x8 {
	var r u32x8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func xor8(a, b u32x8) u32x8 {
	var r u32x8
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func rotr8v(a u32x8, n uint32) u32x8 {
	var r u32x8
	for i := range r {
		r[i] = a[i]>>n | a[i]<<(32-n)
	}
	return r
}

func broadcast8(x uint32) u32x8 {
	var r u32x8
	for i := range r {
		r[i] = x
	}
	return r
}

func g8(s *[16]u32x8, a, b, c, d int, mx, my u32x8) {
	s[a] = add8(s[a], add8(s[b], mx))
	s[d] = rotr8v(xor8(s[d], s[a]), 16)
	s[c] = add8(s[c], s[d])
	s[b] = rotr8v(xor8(s[b], s[c]), 12)
	s[a] = add8(s[a], add8(s[b], my))
	s[d] = rotr8v(xor8(s[d], s[a]), 8)
	s[c] = add8(s[c], s[d])
	s[b] = rotr8v(xor8(s[b], s[c]), 7)
}

func round8(s *[16]u32x8, m *[16]u32x8, r int) {
	sched := &msgSchedule[r]
	g8(s, 0, 4, 8, 12, m[sched[0]], m[sched[1]])
	g8(s, 1, 5, 9, 13, m[sched[2]], m[sched[3]])
	g8(s, 2, 6, 10, 14, m[sched[4]], m[sched[5]])
	g8(s, 3, 7, 11, 15, m[sched[6]], m[sched[7]])
	g8(s, 0, 5, 10, 15, m[sched[8]], m[sched[9]])
	g8(s, 1, 6, 11, 12, m[sched[10]], m[sched[11]])
	g8(s, 2, 7, 8, 13, m[sched[12]], m[sched[13]])
	g8(s, 3, 4, 9, 14, m[sched[14]], m[sched[15]])
}

func compressAVX2(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	var m [16]u32x8
	for i := range m {
		m[i] = broadcast8(loadWord(block, i))
	}

	var s [16]u32x8
	for i := 0; i < 8; i++ {
		s[i] = broadcast8(cv[i])
	}
	for i := 0; i < 4; i++ {
		s[8+i] = broadcast8(IV[i])
	}
	s[12] = broadcast8(uint32(counter))
	s[13] = broadcast8(uint32(counter >> 32))
	s[14] = broadcast8(blockLen)
	s[15] = broadcast8(flags)

	for r := 0; r < 7; r++ {
		round8(&s, &m, r)
	}

	for i := 0; i < 8; i++ {
		out[i] = xor8(s[i], s[i+8])[0]
		out[i+8] = xor8(s[i+8], broadcast8(cv[i]))[0]
	}
}

func hashManyAVX2(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) {
	for base := 0; base < len(inputs); base += 8 {
		n := len(inputs) - base
		if n > 8 {
			n = 8
		}

		var cvv [8]u32x8
		for i := range cvv {
			cvv[i] = broadcast8(key[i])
		}

		for b := 0; b < blocks; b++ {
			var m [16]u32x8
			for w := 0; w < 16; w++ {
				var lanes u32x8
				for lane := 0; lane < n; lane++ {
					lanes[lane] = binary.LittleEndian.Uint32(inputs[base+lane][b*BlockLen+4*w:])
				}
				m[w] = lanes
			}

			var s [16]u32x8
			copy(s[:8], cvv[:])
			for i := 0; i < 4; i++ {
				s[8+i] = broadcast8(IV[i])
			}
			ctr := counter
			if incrementCounter {
				ctr += uint64(b)
			}
			s[12] = broadcast8(uint32(ctr))
			s[13] = broadcast8(uint32(ctr >> 32))
			s[14] = broadcast8(BlockLen)
			blockFlags := flags
			if b == 0 {
				blockFlags |= flagsStart
			}
			if b == blocks-1 {
				blockFlags |= flagsEnd
			}
			s[15] = broadcast8(blockFlags)

			for r := 0; r < 7; r++ {
				round8(&s, &m, r)
			}

			for i := 0; i < 8; i++ {
				cvv[i] = xor8(s[i], s[i+8])
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

package simd

import "encoding/binary"

// AVX-512 backend: 512-bit vectors, 16 x uint32 lanes. Structure
// matches the AVX2 backend at double the batch width.

type u32x16 [16]uint32

func add16(a, b u32x16) u32x16 {
	var r u32x16
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func xor16(a, b u32x16) u32x16 {
	var r u32x16
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

func rotr16v(a u32x16, n uint32) u32x16 {
	var r u32x16
	for i := range r {
		r[i] = a[i]>>n | a[i]<<(32-n)
	}
	return r
}

func broadcast16(x uint32) u32x16 {
	var r u32x16
	for i := range r {
		r[i] = x
	}
	return r
}

func g16(s *[16]u32x16, a, b, c, d int, mx, my u32x16) {
	s[a] = add16(s[a], add16(s[b], mx))
	s[d] = rotr16v(xor16(s[d], s[a]), 16)
	s[c] = add16(s[c], s[d])
	s[b] = rotr16v(xor16(s[b], s[c]), 12)
	s[a] = add16(s[a], add16(s[b], my))
	s[d] = rotr16v(xor16(s[d], s[a]), 8)
	s[c] = add16(s[c], s[d])
	s[b] = rotr16v(xor16(s[b], s[c]), 7)
}

func round16(s *[16]u32x16, m *[16]u32x16, r int) {
	sched := &msgSchedule[r]
	g16(s, 0, 4, 8, 12, m[sched[0]], m[sched[1]])
	g16(s, 1, 5, 9, 13, m[sched[2]], m[sched[3]])
	g16(s, 2, 6, 10, 14, m[sched[4]], m[sched[5]])
	g16(s, 3, 7, 11, 15, m[sched[6]], m[sched[7]])
	g16(s, 0, 5, 10, 15, m[sched[8]], m[sched[9]])
	g16(s, 1, 6, 11, 12, m[sched[10]], m[sched[11]])
	g16(s, 2, 7, 8, 13, m[sched[12]], m[sched[13]])
	g16(s, 3, 4, 9, 14, m[sched[14]], m[sched[15]])
}

func compressAVX512(cv *[8]uint32, block *[64]byte, blockLen uint32, counter uint64, flags uint32, out *[16]uint32) {
	var m [16]u32x16
	for i := range m {
		m[i] = broadcast16(loadWord(block, i))
	}

	var s [16]u32x16
	for i := 0; i < 8; i++ {
		s[i] = broadcast16(cv[i])
	}
	for i := 0; i < 4; i++ {
		s[8+i] = broadcast16(IV[i])
	}
	s[12] = broadcast16(uint32(counter))
	s[13] = broadcast16(uint32(counter >> 32))
	s[14] = broadcast16(blockLen)
	s[15] = broadcast16(flags)

	for r := 0; r < 7; r++ {
		round16(&s, &m, r)
	}

	for i := 0; i < 8; i++ {
		out[i] = xor16(s[i], s[i+8])[0]
		out[i+8] = xor16(s[i+8], broadcast16(cv[i]))[0]
	}
}

func hashManyAVX512(inputs [][]byte, blocks int, key *[8]uint32, counter uint64, incrementCounter bool, flags, flagsStart, flagsEnd uint32, out []byte) {
	for base := 0; base < len(inputs); base += 16 {
		n := len(inputs) - base
		if n > 16 {
			n = 16
		}

		var cvv [8]u32x16
		for i := range cvv {
			cvv[i] = broadcast16(key[i])
		}

		for b := 0; b < blocks; b++ {
			var m [16]u32x16
			for w := 0; w < 16; w++ {
				var lanes u32x16
				for lane := 0; lane < n; lane++ {
					lanes[lane] = binary.LittleEndian.Uint32(inputs[base+lane][b*BlockLen+4*w:])
				}
				m[w] = lanes
			}

			var s [16]u32x16
			copy(s[:8], cvv[:])
			for i := 0; i < 4; i++ {
				s[8+i] = broadcast16(IV[i])
			}
			ctr := counter
			if incrementCounter {
				ctr += uint64(b)
			}
			s[12] = broadcast16(uint32(ctr))
			s[13] = broadcast16(uint32(ctr >> 32))
			s[14] = broadcast16(BlockLen)
			blockFlags := flags
			if b == 0 {
				blockFlags |= flagsStart
			}
			if b == blocks-1 {
				blockFlags |= flagsEnd
			}
			s[15] = broadcast16(blockFlags)

			for r := 0; r < 7; r++ {
				round16(&s, &m, r)
			}

			for i := 0; i < 8; i++ {
				cvv[i] = xor16(s[i], s[i+8])
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

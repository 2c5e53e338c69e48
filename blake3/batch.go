package blake3

import (
	"github.com/GriffinCanCode/Builder/internal/simd"
)

// SumMany hashes many independent inputs and returns one digest per
// input, in order. Inputs that occupy a whole number of blocks within
// a single chunk are grouped by block count and hashed lane-parallel
// through the batch backend; everything else takes the streaming path.
// The result for every input is identical to Sum256 of that input.
//
// Inputs are read-only, so concurrent SumMany calls are safe.
func SumMany(inputs [][]byte) [][Size]byte {
	out := make([][Size]byte, len(inputs))

	// Group batchable inputs by block count; lanes only line up for
	// inputs compressing the same number of blocks.
	groups := make(map[int][]int)
	for i, input := range inputs {
		n := len(input)
		if n > 0 && n <= ChunkSize && n%BlockSize == 0 {
			blocks := n / BlockSize
			groups[blocks] = append(groups[blocks], i)
			continue
		}
		out[i] = Sum256(input)
	}

	key := simd.IV
	for blocks, idxs := range groups {
		batch := make([][]byte, len(idxs))
		for j, i := range idxs {
			batch[j] = inputs[i]
		}
		cvs := make([]byte, len(idxs)*Size)
		// Single-chunk roots: counter 0 on every block, chunk-start on
		// the first, chunk-end and root on the last. The resulting
		// chaining value is the digest.
		err := simd.HashMany(batch, blocks, &key, 0, false,
			0, simd.FlagChunkStart, simd.FlagChunkEnd|simd.FlagRoot, cvs)
		if err != nil {
			// Lengths are validated by construction above.
			panic(err)
		}
		for j, i := range idxs {
			copy(out[i][:], cvs[j*Size:])
		}
	}
	return out
}

package blake3

import (
	"encoding/binary"

	"github.com/GriffinCanCode/Builder/internal/simd"
)

// output is an immutable snapshot of the final compression input for a
// chunk or parent node. It is resolved exactly once: into a chaining
// value for interior nodes, or into root bytes for the root.
type output struct {
	cv       [8]uint32
	block    [64]byte
	blockLen uint32
	counter  uint64
	flags    uint32
}

func (o *output) chainingValue() [8]uint32 {
	var words [16]uint32
	simd.Compress(&o.cv, &o.block, o.blockLen, o.counter, o.flags, &words)
	var cv [8]uint32
	copy(cv[:], words[:8])
	return cv
}

// rootBytes expands the node into out starting seek bytes into the
// output stream. Only the root node may be expanded this way; every
// compression carries the root flag. Parent and chunk counters are
// repurposed as the output block index, so seeking needs no preceding
// output.
func (o *output) rootBytes(seek uint64, out []byte) {
	counter := seek / BlockSize
	offset := int(seek % BlockSize)

	var words [16]uint32
	var wide [64]byte
	for len(out) > 0 {
		simd.Compress(&o.cv, &o.block, o.blockLen, counter, o.flags|simd.FlagRoot, &words)
		for i, w := range words {
			binary.LittleEndian.PutUint32(wide[4*i:], w)
		}
		n := copy(out, wide[offset:])
		out = out[n:]
		offset = 0
		counter++
	}
}

// parentOutput builds the node for two sibling chaining values. The
// block is the left and right child, the counter is always zero, and
// the parent flag separates the domain from chunk compressions.
func parentOutput(left, right [8]uint32, key *[8]uint32, flags uint32) output {
	o := output{
		cv:       *key,
		blockLen: BlockSize,
		flags:    flags | simd.FlagParent,
	}
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(o.block[4*i:], left[i])
		binary.LittleEndian.PutUint32(o.block[32+4*i:], right[i])
	}
	return o
}

// chunkState consumes up to ChunkSize bytes, compressing a block at a
// time into its running chaining value.
type chunkState struct {
	cv               [8]uint32
	counter          uint64
	block            [64]byte
	blockLen         int
	blocksCompressed int
	flags            uint32
}

func newChunkState(key *[8]uint32, counter uint64, flags uint32) chunkState {
	return chunkState{cv: *key, counter: counter, flags: flags}
}

// length returns the number of chunk bytes consumed so far, buffered
// or compressed.
func (cs *chunkState) length() int {
	return cs.blocksCompressed*BlockSize + cs.blockLen
}

// startFlag is set only while the chunk's first block is pending.
func (cs *chunkState) startFlag() uint32 {
	if cs.blocksCompressed == 0 {
		return simd.FlagChunkStart
	}
	return 0
}

// update appends p to the chunk. A buffered block is compressed only
// when more input arrives, so the final block is always still in the
// buffer when the chunk ends.
func (cs *chunkState) update(p []byte) {
	for len(p) > 0 {
		if cs.blockLen == BlockSize {
			var words [16]uint32
			simd.Compress(&cs.cv, &cs.block, BlockSize, cs.counter, cs.flags|cs.startFlag(), &words)
			copy(cs.cv[:], words[:8])
			cs.blocksCompressed++
			cs.blockLen = 0
		}
		n := copy(cs.block[cs.blockLen:], p)
		cs.blockLen += n
		p = p[n:]
	}
}

// output snapshots the chunk's final (possibly partial) block with the
// chunk-end flag set. Stale buffer bytes past blockLen are zeroed.
func (cs *chunkState) output() output {
	o := output{
		cv:       cs.cv,
		blockLen: uint32(cs.blockLen),
		counter:  cs.counter,
		flags:    cs.flags | cs.startFlag() | simd.FlagChunkEnd,
	}
	copy(o.block[:], cs.block[:cs.blockLen])
	return o
}

package blake3

import (
	"encoding/binary"
	"hash"
	"math"

	"github.com/GriffinCanCode/Builder/internal/simd"
)

// Constants fixed by the hash format, not configurable.
const (
	// Size is the default digest length in bytes.
	Size = 32
	// BlockSize is the compression block size in bytes.
	BlockSize = simd.BlockLen
	// ChunkSize is the chunk size in bytes: the atomic unit hashed
	// independently before tree combination.
	ChunkSize = simd.ChunkLen
	// KeySize is the keyed-mode key length in bytes.
	KeySize = simd.KeyLen
)

// Version identifies the digest construction. Cache keys derived from
// this engine embed it so a format change invalidates old entries.
const Version = "blake3/1"

// maxStackDepth bounds the subtree stack: one entry per tree height
// for a 2^64-1 byte input of 1024-byte chunks.
const maxStackDepth = 54

// Hasher computes a digest incrementally. It implements hash.Hash.
//
// A Hasher retains its key words and domain flags for its whole
// lifetime, so Reset never degrades a keyed or derive-key hasher into
// an unkeyed one.
type Hasher struct {
	key   [8]uint32
	flags uint32
	size  int

	chunk chunkState

	// Completed subtree chaining values, at most one per height,
	// merged pairwise left-to-right as sibling subtrees complete.
	stack    [maxStackDepth][8]uint32
	stackLen int
}

func newHasher(key [8]uint32, flags uint32) *Hasher {
	return &Hasher{
		key:   key,
		flags: flags,
		size:  Size,
		chunk: newChunkState(&key, 0, flags),
	}
}

// New returns an unkeyed Hasher.
func New() *Hasher {
	return newHasher(simd.IV, 0)
}

// NewKeyed returns a keyed Hasher. The key must be exactly KeySize
// bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	return newHasher(loadKeyWords(key), simd.FlagKeyedHash), nil
}

// NewDeriveKey returns a Hasher for deriving key material bound to
// context. The context is hashed under its own domain flag and the
// resulting 32 bytes become the key words of the returned hasher, so
// the same material under different contexts yields unrelated output.
// context should be hardcoded, globally unique and
// application-specific.
func NewDeriveKey(context []byte) *Hasher {
	ctxHasher := newHasher(simd.IV, simd.FlagDeriveKeyContext)
	ctxHasher.Update(context)
	contextKey := ctxHasher.Finalize(KeySize)
	return newHasher(loadKeyWords(contextKey), simd.FlagDeriveKeyMaterial)
}

// Update feeds data into the hasher. It may be called any number of
// times; splitting input across calls never changes the digest.
func (h *Hasher) Update(data []byte) {
	for len(data) > 0 {
		// A full chunk is finalized only once more input arrives, so
		// the final chunk is still open when Finalize runs.
		if h.chunk.length() == ChunkSize {
			out := h.chunk.output()
			cv := out.chainingValue()
			total := h.chunk.counter + 1
			h.pushSubtree(cv, total)
			h.chunk = newChunkState(&h.key, total, h.flags)
		}
		want := ChunkSize - h.chunk.length()
		take := len(data)
		if take > want {
			take = want
		}
		h.chunk.update(data[:take])
		data = data[take:]
	}
}

// pushSubtree merges cv with completed sibling subtrees and pushes the
// result. totalChunks is the number of whole chunks consumed; its
// trailing zero bits say how many merges are due, which keeps the
// stack at one entry per height.
func (h *Hasher) pushSubtree(cv [8]uint32, totalChunks uint64) {
	for totalChunks&1 == 0 {
		h.stackLen--
		cv = parentCV(h.stack[h.stackLen], cv, &h.key, h.flags)
		totalChunks >>= 1
	}
	h.stack[h.stackLen] = cv
	h.stackLen++
}

func parentCV(left, right [8]uint32, key *[8]uint32, flags uint32) [8]uint32 {
	o := parentOutput(left, right, key, flags)
	return o.chainingValue()
}

// rootOutput folds the open chunk into the pending subtrees, producing
// the single root node. The stack is not modified, so finalizing is
// repeatable and more input may still be appended afterwards.
func (h *Hasher) rootOutput() output {
	o := h.chunk.output()
	for i := h.stackLen - 1; i >= 0; i-- {
		o = parentOutput(h.stack[i], o.chainingValue(), &h.key, h.flags)
	}
	return o
}

// Finalize returns outLen bytes of output. The first Size bytes are
// the digest; longer outputs extend the same stream.
func (h *Hasher) Finalize(outLen int) []byte {
	out := make([]byte, outLen)
	o := h.rootOutput()
	o.rootBytes(0, out)
	return out
}

// FinalizeSeek returns outLen bytes of output starting seek bytes into
// the output stream, without materializing the skipped prefix. It is
// byte-identical to Finalize(seek+outLen)[seek:].
func (h *Hasher) FinalizeSeek(seek uint64, outLen int) ([]byte, error) {
	if uint64(outLen) > math.MaxUint64-seek {
		return nil, ErrSeekRange
	}
	out := make([]byte, outLen)
	o := h.rootOutput()
	o.rootBytes(seek, out)
	return out, nil
}

// XOF returns a seekable reader over the output stream, initialized
// with the current hash state.
func (h *Hasher) XOF() *OutputReader {
	return &OutputReader{node: h.rootOutput()}
}

// Reset restores the hasher to its initial state, keeping its key and
// domain flags.
func (h *Hasher) Reset() {
	h.chunk = newChunkState(&h.key, 0, h.flags)
	h.stackLen = 0
}

// Write implements hash.Hash.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Sum implements hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	return append(b, h.Finalize(h.size)...)
}

// Size implements hash.Hash.
func (h *Hasher) Size() int { return h.size }

// BlockSize implements hash.Hash.
func (h *Hasher) BlockSize() int { return BlockSize }

var _ hash.Hash = (*Hasher)(nil)

// Sum256 returns the unkeyed digest of data.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	if len(data) <= BlockSize {
		// Single-block inputs root directly; skip the state machine.
		var o output
		o.cv = simd.IV
		o.blockLen = uint32(len(data))
		o.flags = simd.FlagChunkStart | simd.FlagChunkEnd
		copy(o.block[:], data)
		o.rootBytes(0, out[:])
		return out
	}
	h := New()
	h.Update(data)
	o := h.rootOutput()
	o.rootBytes(0, out[:])
	return out
}

// DeriveKey derives len(subKey) bytes of key material from material,
// bound to context.
func DeriveKey(subKey []byte, context string, material []byte) {
	h := NewDeriveKey([]byte(context))
	h.Update(material)
	o := h.rootOutput()
	o.rootBytes(0, subKey)
}

func loadKeyWords(key []byte) [8]uint32 {
	var words [8]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	return words
}

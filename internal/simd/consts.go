package simd

// Constants fixed by the hash format. None are configurable.
const (
	// BlockLen is the compression block size in bytes.
	BlockLen = 64
	// ChunkLen is the chunk size in bytes (16 blocks).
	ChunkLen = 1024
	// KeyLen is the key size in bytes.
	KeyLen = 32
	// CVLen is the chaining value size in bytes (8 words).
	CVLen = 32
	// MaxLanes is the widest batch width of any backend.
	MaxLanes = 16
)

// Domain separation flags. Structurally different inputs carry distinct
// flag bits so they can never collide.
const (
	FlagChunkStart        uint32 = 1 << 0
	FlagChunkEnd          uint32 = 1 << 1
	FlagParent            uint32 = 1 << 2
	FlagRoot              uint32 = 1 << 3
	FlagKeyedHash         uint32 = 1 << 4
	FlagDeriveKeyContext  uint32 = 1 << 5
	FlagDeriveKeyMaterial uint32 = 1 << 6
)

// IV is the initialization vector, shared with SHA-256.
var IV = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// msgSchedule[r] is the message word permutation applied in round r.
var msgSchedule = [7][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8},
	{3, 4, 10, 12, 13, 2, 7, 14, 6, 5, 9, 0, 11, 15, 8, 1},
	{10, 7, 12, 9, 14, 3, 13, 15, 4, 0, 11, 2, 5, 8, 1, 6},
	{12, 13, 9, 11, 15, 10, 14, 8, 7, 2, 5, 3, 0, 1, 6, 4},
	{9, 14, 11, 5, 8, 12, 15, 1, 13, 3, 0, 10, 2, 6, 4, 7},
	{11, 15, 5, 0, 1, 9, 8, 6, 14, 10, 2, 12, 3, 4, 7, 13},
}

package blake3

import (
	"errors"
	"io"
	"math"
)

// An OutputReader produces a seekable stream of up to 2^64 - 1 output
// bytes. Reads continue the extendable output of the hasher state it
// was created from.
type OutputReader struct {
	node output
	buf  [BlockSize]byte
	off  uint64
}

// Read implements io.Reader. It returns len(p), nil unless the read
// would extend beyond the end of the stream.
func (or *OutputReader) Read(p []byte) (int, error) {
	if or.off == math.MaxUint64 {
		return 0, io.EOF
	}
	if rem := math.MaxUint64 - or.off; uint64(len(p)) > rem {
		p = p[:rem]
	}
	lenp := len(p)
	for len(p) > 0 {
		if or.off%BlockSize == 0 {
			or.node.rootBytes(or.off, or.buf[:])
		}
		n := copy(p, or.buf[or.off%BlockSize:])
		p = p[n:]
		or.off += uint64(n)
	}
	return lenp, nil
}

// Seek implements io.Seeker. Seeking never recomputes skipped output.
func (or *OutputReader) Seek(offset int64, whence int) (int64, error) {
	off := or.off
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, errors.New("blake3: seek position cannot be negative")
		}
		off = uint64(offset)
	case io.SeekCurrent:
		if offset < 0 {
			if uint64(-offset) > off {
				return 0, errors.New("blake3: seek position cannot be negative")
			}
			off -= uint64(-offset)
		} else {
			off += uint64(offset)
		}
	case io.SeekEnd:
		off = uint64(offset) - 1
	default:
		return 0, errors.New("blake3: invalid whence")
	}
	or.off = off
	if off%BlockSize != 0 {
		or.node.rootBytes(off-off%BlockSize, or.buf[:])
	}
	// An offset >= 2^63 is reported as a negative position; the
	// stream itself is unaffected.
	return int64(off), nil
}

var _ io.ReadSeeker = (*OutputReader)(nil)

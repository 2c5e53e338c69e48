package blake3

import "errors"

var (
	// ErrKeySize is returned when a keyed hasher is given a key that
	// is not exactly KeySize bytes.
	ErrKeySize = errors.New("blake3: key must be exactly 32 bytes")

	// ErrSeekRange is returned when a seek offset plus output length
	// would pass the end of the representable output stream.
	ErrSeekRange = errors.New("blake3: seek beyond representable output range")
)

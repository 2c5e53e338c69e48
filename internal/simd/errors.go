package simd

import "errors"

// ErrBatchLength is returned by HashMany when the input, block and
// output lengths are inconsistent. Length mismatches are precondition
// violations; they are never silently truncated.
var ErrBatchLength = errors.New("simd: batch length mismatch")

package script

import "errors"

// errLengthOverflow is returned when a caller-supplied push length
// exceeds uint32 range, per spec.md §4.2: "Payload larger than
// u32::MAX fails with LengthOverflow."
var errLengthOverflow = errors.New("script: push data length overflow")

// ErrLengthOverflow is the exported sentinel for errors.Is comparisons.
var ErrLengthOverflow = errLengthOverflow

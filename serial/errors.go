package serial

import "errors"

// ErrCompatMismatch indicates a decoded envelope's header type or version
// does not match what this package produces.
var ErrCompatMismatch = errors.New("serial: envelope type/version mismatch")

// ErrLengthMismatch indicates a decoded envelope's scores or weight arrays
// do not match the length implied by its graph's node or edge count.
var ErrLengthMismatch = errors.New("serial: array length does not match graph")

package diagnostics

import "errors"

// ErrIndexOutOfRange indicates an edge in the input references a point
// index outside [0, numPoints).
var ErrIndexOutOfRange = errors.New("diagnostics: edge endpoint index out of range")

package core

import "errors"

// Sentinel errors returned by clean_pslg and its collaborators. Every error
// below is fatal to the call in progress. On the three input-validation
// errors the caller's points and edges are left unmodified; see
// ErrIterationLimit for the one exception.
var (
	// ErrIndexOutOfRange indicates an edge references a point index outside
	// [0, len(points)).
	ErrIndexOutOfRange = errors.New("core: edge endpoint index out of range")

	// ErrEqualEndpoints indicates an edge's two endpoint indices are equal.
	ErrEqualEndpoints = errors.New("core: edge endpoints must be distinct")

	// ErrColorLengthMismatch indicates a supplied color slice's length does
	// not equal the edge slice's length on entry.
	ErrColorLengthMismatch = errors.New("core: color slice length does not match edge slice length")

	// ErrIterationLimit indicates the fixed-point loop exceeded its defensive
	// iteration cap. The caller's data may be partially modified.
	ErrIterationLimit = errors.New("core: snap-round iteration limit exceeded")
)

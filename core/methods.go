package core

// ValidateInput checks the invariants clean_pslg requires on entry:
// every edge references two distinct, in-range point indices, and — when
// colors is non-nil — its length matches edges.
//
// Returns the first violation found; ValidateInput does not attempt to report
// every violation in a single call.
func ValidateInput(numPoints int, edges []Edge, colors []int32) error {
	if colors != nil && len(colors) != len(edges) {
		return ErrColorLengthMismatch
	}
	for _, e := range edges {
		if e.S == e.T {
			return ErrEqualEndpoints
		}
		if e.S < 0 || e.S >= numPoints || e.T < 0 || e.T >= numPoints {
			return ErrIndexOutOfRange
		}
	}

	return nil
}

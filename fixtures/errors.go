package fixtures

import "errors"

// ErrTooFewPoints indicates a constructor's size parameter is below the
// minimum needed to produce a non-degenerate fixture.
var ErrTooFewPoints = errors.New("fixtures: too few points requested")

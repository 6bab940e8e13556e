// Package ratbounds computes conservative IEEE-754 float bounds for an exact
// rational: BoundRat(r) returns [lo, hi] such that lo <= r <= hi and hi is
// either lo or the float immediately above it.
package ratbounds

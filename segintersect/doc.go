// Package segintersect provides two exact geometric primitives: a robust
// segment-segment predicate that is exact in sign for any double-precision
// input (Intersects), and a rational segment-intersection solver that
// returns the unique exact intersection point of two segments or reports
// that none exists (Solve).
//
// Both operate by lifting float64 endpoints to exact math/big.Rat
// coordinates first, so every comparison below is an exact rational
// comparison — there is no epsilon anywhere in this package.
package segintersect

// Package ratio wraps math/big.Rat with the three operations the rest of
// this module needs for exact arithmetic: construction from a float64,
// comparison, and conversion back to the nearest float64. No third-party
// arbitrary-precision rational library surfaced anywhere in the retrieved
// pack; math/big is the Go ecosystem's standard vehicle for exact rational
// arithmetic (see DESIGN.md).
package ratio

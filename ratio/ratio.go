package ratio

import "math/big"

// FromFloat constructs the exact rational value of a finite float64. Every
// float64 is exactly representable as a rational (it is a fixed-size
// mantissa scaled by a power of two), so this conversion never loses
// precision.
func FromFloat(x float64) *big.Rat {
	r := new(big.Rat)
	// SetFloat64 only returns nil for NaN/Inf; callers only ever pass the
	// finite coordinates the data model guarantees.
	r.SetFloat64(x)

	return r
}

// ToFloat converts r to the nearest float64, rounding to even on a tie, per
// big.Rat.Float64.
func ToFloat(r *big.Rat) float64 {
	f, _ := r.Float64()

	return f
}

// Cmp compares two exact rationals: -1 if a < b, 0 if a == b, +1 if a > b.
func Cmp(a, b *big.Rat) int {
	return a.Cmp(b)
}

package ratbounds

import (
	"math/big"

	"github.com/katalvlaran/snapround/floatround"
	"github.com/katalvlaran/snapround/ratio"
)

// BoundRat returns [lo, hi] bracketing r as tightly as a single adjacent pair
// of doubles allows:
//
//  1. f := nearest double to r.
//  2. If rat(f) < r, return [f, up(f)].
//  3. If rat(f) > r, return [down(f), f].
//  4. Otherwise r is exactly representable: return [f, f].
func BoundRat(r *big.Rat) (lo, hi float64) {
	f := ratio.ToFloat(r)
	rf := ratio.FromFloat(f)

	switch ratio.Cmp(rf, r) {
	case -1:
		return f, floatround.Up(f)
	case 1:
		return floatround.Down(f), f
	default:
		return f, f
	}
}

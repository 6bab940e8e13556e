package segintersect

import (
	"math/big"

	"github.com/katalvlaran/snapround/core"
)

// Solve returns the unique exact intersection point of the infinite lines
// through (a0,a1) and (b0,b1), or false if the two lines are parallel
// (including collinear) and therefore have no unique intersection. Callers
// that need the intersection to additionally lie within both closed segments
// should pair this with Intersects first (EdgeCutter already knows both
// edges cross before calling Solve).
func Solve(a0, a1, b0, b1 core.Point) (core.RationalPoint, bool) {
	p1, p2 := toRatPoint(a0), toRatPoint(a1)
	p3, p4 := toRatPoint(b0), toRatPoint(b1)

	x1, y1 := p1.x, p1.y
	x2, y2 := p2.x, p2.y
	x3, y3 := p3.x, p3.y
	x4, y4 := p4.x, p4.y

	a := new(big.Rat).Sub(x1, x2)
	b := new(big.Rat).Sub(y3, y4)
	c := new(big.Rat).Sub(y1, y2)
	d := new(big.Rat).Sub(x3, x4)

	denom := new(big.Rat).Sub(new(big.Rat).Mul(a, b), new(big.Rat).Mul(c, d))
	if denom.Sign() == 0 {
		return core.RationalPoint{}, false
	}

	// Standard two-line determinant formula (Cramer's rule over the two
	// line equations).
	cross1 := new(big.Rat).Sub(new(big.Rat).Mul(x1, y2), new(big.Rat).Mul(y1, x2))
	cross2 := new(big.Rat).Sub(new(big.Rat).Mul(x3, y4), new(big.Rat).Mul(y3, x4))

	px := new(big.Rat).Sub(new(big.Rat).Mul(cross1, d), new(big.Rat).Mul(a, cross2))
	px.Quo(px, denom)

	py := new(big.Rat).Sub(new(big.Rat).Mul(cross1, b), new(big.Rat).Mul(c, cross2))
	py.Quo(py, denom)

	return core.RationalPoint{RX: px, RY: py}, true
}

package segintersect

import (
	"math/big"

	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/ratio"
)

type ratPoint struct {
	x, y *big.Rat
}

func toRatPoint(p core.Point) ratPoint {
	return ratPoint{x: ratio.FromFloat(p.X), y: ratio.FromFloat(p.Y)}
}

// orient returns the sign of the cross product (q-p) x (r-p): positive when
// p, q, r turn counterclockwise, negative when clockwise, zero when
// collinear.
func orient(p, q, r ratPoint) int {
	qxpx := new(big.Rat).Sub(q.x, p.x)
	qypy := new(big.Rat).Sub(q.y, p.y)
	rxpx := new(big.Rat).Sub(r.x, p.x)
	rypy := new(big.Rat).Sub(r.y, p.y)

	d := new(big.Rat).Sub(
		new(big.Rat).Mul(qxpx, rypy),
		new(big.Rat).Mul(qypy, rxpx),
	)

	return d.Sign()
}

func between(v, a, b *big.Rat) bool {
	lo, hi := a, b
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}

	return lo.Cmp(v) <= 0 && v.Cmp(hi) <= 0
}

// onSegment reports whether r, already known to be collinear with p and q,
// lies within p and q's closed bounding box — i.e. on the closed segment pq.
func onSegment(p, q, r ratPoint) bool {
	return between(r.x, p.x, q.x) && between(r.y, p.y, q.y)
}

// Intersects reports whether the closed segments (a0,a1) and (b0,b1)
// intersect, handling proper crossings, collinear overlap, and
// endpoint-on-interior cases identically. b0 == b1 is accepted and tests
// whether the single point b0 lies on segment (a0,a1).
func Intersects(a0, a1, b0, b1 core.Point) bool {
	p1, p2 := toRatPoint(a0), toRatPoint(a1)
	p3, p4 := toRatPoint(b0), toRatPoint(b1)

	d1 := orient(p3, p4, p1)
	d2 := orient(p3, p4, p2)
	d3 := orient(p1, p2, p3)
	d4 := orient(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

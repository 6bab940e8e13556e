package dedupe

import (
	"github.com/katalvlaran/snapround/bounds"
	"github.com/katalvlaran/snapround/broadphase"
	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/ratbounds"
	"github.com/katalvlaran/snapround/ratio"
	"github.com/katalvlaran/snapround/unionfind"
)

// Points extends *points with one rounded float image per entry in
// ratPoints, links points whose conservative boxes overlap via union-find,
// and compacts *points to its canonical representatives.
//
// Returns labels == nil when no two points were linked (the sentinel "none"
// of PointDeduper's merge step) — callers should treat a nil result as "no relabeling is
// needed", not as "zero points". Otherwise labels[i] is the compacted index
// every original index i (over the extended table, length
// len(*points-before-truncation)) maps to.
func Points(points *[]core.Point, ratPoints []core.RationalPoint) ([]int, error) {
	pts := append([]core.Point(nil), *points...)
	boxes := bounds.ForPoints(pts)

	for _, rp := range ratPoints {
		xlo, xhi := ratbounds.BoundRat(rp.RX)
		ylo, yhi := ratbounds.BoundRat(rp.RY)
		boxes = append(boxes, bounds.Box{XMin: xlo, YMin: ylo, XMax: xhi, YMax: yhi})
		pts = append(pts, core.Point{X: ratio.ToFloat(rp.RX), Y: ratio.ToFloat(rp.RY)})
	}

	n := len(pts)
	dsu := unionfind.New(n)
	pairs, err := broadphase.SelfJoin(boxes)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		dsu.Union(p.I, p.J)
	}

	labels, ptr, merged := dsu.Canonicalize()
	if !merged {
		*points = pts

		return nil, nil
	}

	compacted := make([]core.Point, ptr)
	for i := 0; i < n; i++ {
		if dsu.Find(i) == i {
			compacted[labels[i]] = pts[i]
		}
	}
	*points = compacted

	return labels, nil
}

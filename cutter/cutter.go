package cutter

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/ratio"
	"github.com/katalvlaran/snapround/segintersect"
)

// Cut rewrites edges in place: every crossing (e, f) contributes one new
// rational intersection point and a junction on each of e and f; every
// pre-seeded T-junction (from tjunction.Find) contributes one junction on its
// edge. Junctions are sorted per edge along the edge's direction and each
// affected edge is replaced by the resulting chain of sub-edges. Returns the
// rational points constructed along the way, which PointDeduper folds into
// the float point table.
func Cut(points []core.Point, edges *[]core.ColoredEdge, crossings [][2]int, tJunctions []core.Junction) ([]core.RationalPoint, error) {
	junctions := make([]core.Junction, len(tJunctions))
	copy(junctions, tJunctions)

	var ratPoints []core.RationalPoint
	for _, c := range crossings {
		ei, ej := (*edges)[c[0]], (*edges)[c[1]]
		rp, ok := segintersect.Solve(points[ei.S], points[ei.T], points[ej.S], points[ej.T])
		if !ok {
			// Parallel/collinear: no unique point. The T-junction path
			// resolves collinear overlaps by splitting at shared endpoints.
			continue
		}
		ratPoints = append(ratPoints, rp)
		idx := len(points) + len(ratPoints) - 1
		junctions = append(junctions, core.Junction{EdgeIndex: c[0], PointIndex: idx})
		junctions = append(junctions, core.Junction{EdgeIndex: c[1], PointIndex: idx})
	}

	if len(junctions) == 0 {
		return ratPoints, nil
	}

	sort.SliceStable(junctions, func(i, j int) bool {
		a, b := junctions[i], junctions[j]
		if a.EdgeIndex != b.EdgeIndex {
			return a.EdgeIndex < b.EdgeIndex
		}
		ax, ay := pointRat(points, ratPoints, a.PointIndex)
		bx, by := pointRat(points, ratPoints, b.PointIndex)
		if c := ax.Cmp(bx); c != 0 {
			return c < 0
		}

		return ay.Cmp(by) < 0
	})

	i := 0
	for i < len(junctions) {
		j := i + 1
		for j < len(junctions) && junctions[j].EdgeIndex == junctions[i].EdgeIndex {
			j++
		}
		rewriteEdge(points, edges, junctions[i].EdgeIndex, junctions[i:j])
		i = j
	}

	return ratPoints, nil
}

// rewriteEdge replaces edges[edgeIdx] with a chain running from its
// lexicographically-smaller endpoint through group (already sorted ascending
// by exact point position) to its lexicographically-larger endpoint.
func rewriteEdge(points []core.Point, edges *[]core.ColoredEdge, edgeIdx int, group []core.Junction) {
	ed := (*edges)[edgeIdx]
	s, t := ed.S, ed.T
	if lexLess(points[t], points[s]) {
		s, t = t, s
	}

	chain := make([]core.ColoredEdge, 0, len(group)+1)
	last := s
	for _, jn := range group {
		chain = append(chain, core.ColoredEdge{S: last, T: jn.PointIndex, Color: ed.Color})
		last = jn.PointIndex
	}
	chain = append(chain, core.ColoredEdge{S: last, T: t, Color: ed.Color})

	(*edges)[edgeIdx] = chain[0]
	*edges = append(*edges, chain[1:]...)
}

func lexLess(a, b core.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Y < b.Y
}

func pointRat(points []core.Point, ratPoints []core.RationalPoint, idx int) (x, y *big.Rat) {
	if idx < len(points) {
		p := points[idx]

		return ratio.FromFloat(p.X), ratio.FromFloat(p.Y)
	}
	rp := ratPoints[idx-len(points)]

	return rp.RX, rp.RY
}

package crossing

import (
	"github.com/katalvlaran/snapround/bounds"
	"github.com/katalvlaran/snapround/broadphase"
	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/segintersect"
)

// Find enumerates crossing edge pairs (i, j), i < j, over points and edges
// using edgeBounds (one box per edge, in edge order — see bounds.ForEdges).
//
//  1. Broad-phase: query the box reporter in self mode over edgeBounds.
//  2. For each candidate (i, j): skip if the edges share an endpoint index;
//     otherwise apply the robust predicate and keep the pair iff it reports
//     an intersection.
func Find(points []core.Point, edges []core.ColoredEdge, edgeBounds []bounds.Box) ([][2]int, error) {
	candidates, err := broadphase.SelfJoin(edgeBounds)
	if err != nil {
		return nil, err
	}

	var out [][2]int
	for _, c := range candidates {
		ei, ej := edges[c.I], edges[c.J]
		if sharesEndpoint(ei, ej) {
			continue
		}
		a0, a1 := points[ei.S], points[ei.T]
		b0, b1 := points[ej.S], points[ej.T]
		if segintersect.Intersects(a0, a1, b0, b1) {
			out = append(out, [2]int{c.I, c.J})
		}
	}

	return out, nil
}

func sharesEndpoint(a, b core.ColoredEdge) bool {
	return a.S == b.S || a.S == b.T || a.T == b.S || a.T == b.T
}

package tjunction

import (
	"github.com/katalvlaran/snapround/bounds"
	"github.com/katalvlaran/snapround/broadphase"
	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/segintersect"
)

// Find enumerates T-junctions: (edgeIndex, vertexIndex) pairs where vertex
// vertexIndex lies on edge edgeIndex's closed segment and is not one of its
// two endpoints. edgeBounds and vertexBounds must be in edge/point order
// respectively (see bounds.ForEdges, bounds.ForPoints).
func Find(points []core.Point, edges []core.ColoredEdge, edgeBounds, vertexBounds []bounds.Box) ([]core.Junction, error) {
	candidates, err := broadphase.CrossJoin(edgeBounds, vertexBounds)
	if err != nil {
		return nil, err
	}

	var out []core.Junction
	for _, c := range candidates {
		e := edges[c.I]
		v := c.J
		if v == e.S || v == e.T {
			continue
		}
		p := points[v]
		if segintersect.Intersects(points[e.S], points[e.T], p, p) {
			out = append(out, core.Junction{EdgeIndex: c.I, PointIndex: v})
		}
	}

	return out, nil
}

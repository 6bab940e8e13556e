package bounds

import "github.com/katalvlaran/snapround/core"

// Box is an axis-aligned bounding box, XMin <= XMax and YMin <= YMax.
type Box struct {
	XMin, YMin, XMax, YMax float64
}

// Overlaps reports whether b and o share at least one point, inclusive of
// shared boundaries.
func (b Box) Overlaps(o Box) bool {
	return b.XMin <= o.XMax && o.XMin <= b.XMax && b.YMin <= o.YMax && o.YMin <= b.YMax
}

// ForEdge returns the bounding box of the segment (p0, p1).
func ForEdge(p0, p1 core.Point) Box {
	return Box{
		XMin: min(p0.X, p1.X),
		YMin: min(p0.Y, p1.Y),
		XMax: max(p0.X, p1.X),
		YMax: max(p0.Y, p1.Y),
	}
}

// ForPoint returns the degenerate bounding box of a single point.
func ForPoint(p core.Point) Box {
	return Box{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
}

// ForEdges builds one box per edge, in edge order.
func ForEdges(points []core.Point, edges []core.Edge) []Box {
	out := make([]Box, len(edges))
	for i, e := range edges {
		out[i] = ForEdge(points[e.S], points[e.T])
	}

	return out
}

// ForColoredEdges builds one box per edge, in edge order, for edges carrying
// an (unused here) color tag.
func ForColoredEdges(points []core.Point, edges []core.ColoredEdge) []Box {
	out := make([]Box, len(edges))
	for i, e := range edges {
		out[i] = ForEdge(points[e.S], points[e.T])
	}

	return out
}

// ForPoints builds one degenerate box per point, in point order.
func ForPoints(points []core.Point) []Box {
	out := make([]Box, len(points))
	for i, p := range points {
		out[i] = ForPoint(p)
	}

	return out
}

package snapround

import (
	"github.com/katalvlaran/snapround/bounds"
	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/crossing"
	"github.com/katalvlaran/snapround/cutter"
	"github.com/katalvlaran/snapround/dedupe"
	"github.com/katalvlaran/snapround/tjunction"
)

// Pass runs one iteration of SnapRoundDriver: build edge bounds, find
// crossings, build vertex bounds, find T-junctions, cut edges, dedup points,
// dedup edges. EdgeDeduper always runs, even when nothing else changed —
// an iteration that relabeled points but found no crossings or T-junctions
// can still have produced duplicate edges, so the edge-dedup step must
// never be short-circuited.
//
// Returns whether this pass modified points or edges in any way — a
// crossing or T-junction was found, points were relabeled, or EdgeDeduper
// removed a duplicate/zero-length edge. Folding EdgeDeduper's own change
// flag into this result (rather than just "crossings/T-junctions found or
// labels present") is deliberate: a pass that only removes an exact
// duplicate edge pair, with no crossing (they share both endpoints), no
// T-junction, and no coincident vertex, still needs to report that it
// changed something — see DESIGN.md.
//
// Also returns the number of crossings and T-junctions this pass found, so
// a caller that aborts on the iteration cap can report how much work was
// still outstanding at that point.
func Pass(points *[]core.Point, edges *[]core.ColoredEdge, useColor bool, cfg config) (changed bool, nCrossings int, nTJunctions int, err error) {
	edgeBounds := bounds.ForColoredEdges(*points, *edges)

	crossings, err := crossing.Find(*points, *edges, edgeBounds)
	if err != nil {
		return false, 0, 0, err
	}

	vertexBounds := bounds.ForPoints(*points)
	tJunctions, err := tjunction.Find(*points, *edges, edgeBounds, vertexBounds)
	if err != nil {
		return false, 0, 0, err
	}

	ratPoints, err := cutter.Cut(*points, edges, crossings, tJunctions)
	if err != nil {
		return false, 0, 0, err
	}
	if skipped := len(crossings) - len(ratPoints); skipped > 0 {
		cfg.logger.Printf("snapround: skipped %d degenerate crossing(s) with no unique intersection", skipped)
	}

	labels, err := dedupe.Points(points, ratPoints)
	if err != nil {
		return false, 0, 0, err
	}

	edgesChanged := dedupe.Edges(edges, labels, useColor)

	changed = len(crossings) > 0 || len(tJunctions) > 0 || labels != nil || edgesChanged

	return changed, len(crossings), len(tJunctions), nil
}

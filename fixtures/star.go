package fixtures

import (
	"fmt"
	"math"

	"github.com/katalvlaran/snapround/core"
)

const minStarSpokes = 2

// Star builds n-1 spokes radiating from a hub at the origin to points
// evenly spaced around a unit circle. Adjacent spokes never cross (they
// only share the hub), so a clean Star is already clean; it is most useful
// combined with WithJitter, or as one half of a scene assembled with
// DuplicateHeavy to generate crossings between independently built stars.
func Star(n int, opts ...Option) ([]core.Point, []core.Edge, error) {
	if n < minStarSpokes {
		return nil, nil, fmt.Errorf("fixtures: Star(n=%d): %w", n, ErrTooFewPoints)
	}

	cfg := newConfig(opts...)
	points := make([]core.Point, n)
	points[0] = core.Point{X: cfg.nudge(0), Y: cfg.nudge(0)}

	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		theta := 2 * math.Pi * float64(i-1) / float64(n-1)
		points[i] = core.Point{X: cfg.nudge(math.Cos(theta)), Y: cfg.nudge(math.Sin(theta))}
		edges = append(edges, core.Edge{S: 0, T: i})
	}

	return points, edges, nil
}

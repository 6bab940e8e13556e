package fixtures

import (
	"fmt"

	"github.com/katalvlaran/snapround/core"
)

const minDuplicatePairs = 1

// DuplicateHeavy builds n coincident-point pairs on the line y=0, each
// joined to a shared far point by two edges that exactly duplicate each
// other's endpoints once the pair collapses. It exists purely to stress
// PointDeduper and EdgeDeduper: every pair contributes one point merge, and
// because all points lie on y=0 the long edges are also split at every
// point they pass through, so CleanPSLG on this fixture always reports true
// and leaves the path through the n+1 distinct positions: the 2n+1 points
// become n+1 and the 2n edges become n. Jitter moves only the far point's x
// coordinate; the coincident pairs stay exact.
func DuplicateHeavy(n int, opts ...Option) ([]core.Point, []core.Edge, error) {
	if n < minDuplicatePairs {
		return nil, nil, fmt.Errorf("fixtures: DuplicateHeavy(n=%d): %w", n, ErrTooFewPoints)
	}

	cfg := newConfig(opts...)
	points := make([]core.Point, 0, 2*n+1)
	edges := make([]core.Edge, 0, 2*n)

	far := 0
	points = append(points, core.Point{X: cfg.nudge(float64(n) + 1), Y: 0})

	for i := 0; i < n; i++ {
		a := len(points)
		points = append(points, core.Point{X: float64(i), Y: 0})
		b := len(points)
		points = append(points, core.Point{X: float64(i), Y: 0})

		edges = append(edges, core.Edge{S: far, T: a})
		edges = append(edges, core.Edge{S: b, T: far})
	}

	return points, edges, nil
}

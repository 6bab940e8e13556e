package fixtures

import (
	"fmt"

	"github.com/katalvlaran/snapround/core"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal grid: one point per cell in
// row-major order, one edge to each cell's right and bottom neighbor where
// they exist. With zero jitter the result is already clean (no crossings,
// no T-junctions, no coincidences); WithJitter perturbs it just enough to
// manufacture near-degenerate cases for the snap-rounding loop to resolve.
func Grid(rows, cols int, opts ...Option) ([]core.Point, []core.Edge, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("fixtures: Grid(rows=%d, cols=%d): %w", rows, cols, ErrTooFewPoints)
	}

	cfg := newConfig(opts...)
	idx := func(r, c int) int { return r*cols + c }

	points := make([]core.Point, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points[idx(r, c)] = core.Point{X: cfg.nudge(float64(c)), Y: cfg.nudge(float64(r))}
		}
	}

	var edges []core.Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, core.Edge{S: idx(r, c), T: idx(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, core.Edge{S: idx(r, c), T: idx(r+1, c)})
			}
		}
	}

	return points, edges, nil
}

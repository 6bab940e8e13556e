package diagnostics

import (
	"fmt"

	"github.com/katalvlaran/snapround/core"
)

// undirectedMark is placed at each endpoint row of a non-loop edge column;
// a clean PSLG never contains loops (clean_pslg rejects s == t on entry and
// EdgeDeduper drops any that rounding produces), so that case never arises
// here.
const undirectedMark = 1.0

// Incidence is a dense points x edges incidence matrix: Mat[v][e] is
// undirectedMark if point v is an endpoint of edge e, zero otherwise.
// Degree holds each point's row sum, i.e. how many edges touch it.
type Incidence struct {
	Mat    [][]float64
	Degree []int
}

// BuildIncidence constructs the incidence matrix and degree vector for
// points and edges. Returns ErrIndexOutOfRange if any edge references a
// point index outside [0, len(points)).
//
// Complexity: O(|points|*|edges|) for the dense matrix, O(|edges|) for
// degree.
func BuildIncidence(points []core.Point, edges []core.Edge) (*Incidence, error) {
	n := len(points)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, len(edges))
	}
	degree := make([]int, n)

	for col, e := range edges {
		if e.S < 0 || e.S >= n || e.T < 0 || e.T >= n {
			return nil, fmt.Errorf("diagnostics: edge %d = (%d,%d), |points|=%d: %w", col, e.S, e.T, n, ErrIndexOutOfRange)
		}
		mat[e.S][col] = undirectedMark
		mat[e.T][col] = undirectedMark
		degree[e.S]++
		degree[e.T]++
	}

	return &Incidence{Mat: mat, Degree: degree}, nil
}

// IsolatedPoints returns the indices of every point with degree zero —
// points clean_pslg carried through untouched by any edge. A non-empty
// result is not itself an error; isolated points are valid PSLG vertices.
func (inc *Incidence) IsolatedPoints() []int {
	var out []int
	for i, d := range inc.Degree {
		if d == 0 {
			out = append(out, i)
		}
	}

	return out
}

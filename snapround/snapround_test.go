package snapround_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/snapround"
)

// CleanPSLGSuite exercises clean_pslg against its worked scenarios.
type CleanPSLGSuite struct {
	suite.Suite
}

func TestCleanPSLGSuite(t *testing.T) {
	suite.Run(t, new(CleanPSLGSuite))
}

// TestNoOp verifies an already-clean PSLG is left untouched.
func (s *CleanPSLGSuite) TestNoOp() {
	points := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	edges := []core.Edge{{S: 0, T: 1}}

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), modified)
	require.Equal(s.T(), []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, points)
	require.Equal(s.T(), []core.Edge{{S: 0, T: 1}}, edges)
}

// TestXCross verifies two diagonals crossing at the origin are cut into
// four half-segments meeting at a new shared vertex.
func (s *CleanPSLGSuite) TestXCross() {
	points := []core.Point{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}}
	edges := []core.Edge{{S: 0, T: 1}, {S: 2, T: 3}}

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), modified)
	require.Len(s.T(), points, 5)
	require.Equal(s.T(), core.Point{X: 0, Y: 0}, points[4])
	require.Len(s.T(), edges, 4)
	for _, e := range edges {
		require.True(s.T(), e.S == 4 || e.T == 4, "every edge must meet the new vertex")
	}
}

// TestTJunction verifies a vertex on an edge's interior splits that edge.
func (s *CleanPSLGSuite) TestTJunction() {
	points := []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	edges := []core.Edge{{S: 0, T: 1}}

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), modified)
	require.Len(s.T(), points, 3)
	require.ElementsMatch(s.T(), []core.Edge{{S: 0, T: 2}, {S: 1, T: 2}}, edges)
}

// TestDuplicateEdges verifies an exact-duplicate edge pair collapses to one.
func (s *CleanPSLGSuite) TestDuplicateEdges() {
	points := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	edges := []core.Edge{{S: 0, T: 1}, {S: 1, T: 0}}

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), modified)
	require.Equal(s.T(), []core.Edge{{S: 0, T: 1}}, edges)
}

// TestCoincidentVertices verifies coincident points are merged, dragging
// the edges that reference them down to one.
func (s *CleanPSLGSuite) TestCoincidentVertices() {
	points := []core.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	edges := []core.Edge{{S: 0, T: 2}, {S: 1, T: 2}}

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), modified)
	require.Len(s.T(), points, 2)
	require.Len(s.T(), edges, 1)
}

// TestColoredDuplicatesKeptSeparate verifies that distinct colors prevent
// two same-endpoint edges from being deduplicated away.
func (s *CleanPSLGSuite) TestColoredDuplicatesKeptSeparate() {
	points := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	edges := []core.Edge{{S: 0, T: 1}, {S: 1, T: 0}}
	colors := []int32{5, 7}

	modified, err := snapround.CleanPSLG(&points, &edges, &colors)
	require.NoError(s.T(), err)
	require.True(s.T(), modified)
	require.Len(s.T(), edges, 2)
	require.Len(s.T(), colors, 2)
	require.Equal(s.T(), int32(5), colors[0])
	require.Equal(s.T(), int32(7), colors[1])
}

// TestEmptyInput verifies an empty PSLG is a no-op.
func (s *CleanPSLGSuite) TestEmptyInput() {
	var points []core.Point
	var edges []core.Edge

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), modified)
	require.Empty(s.T(), points)
	require.Empty(s.T(), edges)
}

// TestIdempotent verifies a second call on already-clean output is a no-op
// and leaves both lists byte-identical.
func (s *CleanPSLGSuite) TestIdempotent() {
	points := []core.Point{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}}
	edges := []core.Edge{{S: 0, T: 1}, {S: 2, T: 3}}

	_, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)

	beforePoints := append([]core.Point(nil), points...)
	beforeEdges := append([]core.Edge(nil), edges...)

	modified, err := snapround.CleanPSLG(&points, &edges, nil)
	require.NoError(s.T(), err)
	require.False(s.T(), modified)
	require.Equal(s.T(), beforePoints, points)
	require.Equal(s.T(), beforeEdges, edges)
}

// TestInvalidInput verifies invalid edges are rejected without mutation.
func (s *CleanPSLGSuite) TestInvalidInput() {
	points := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}

	s.Run("equal endpoints", func() {
		edges := []core.Edge{{S: 0, T: 0}}
		_, err := snapround.CleanPSLG(&points, &edges, nil)
		require.ErrorIs(s.T(), err, core.ErrEqualEndpoints)
	})

	s.Run("out of range", func() {
		edges := []core.Edge{{S: 0, T: 5}}
		_, err := snapround.CleanPSLG(&points, &edges, nil)
		require.ErrorIs(s.T(), err, core.ErrIndexOutOfRange)
	})

	s.Run("color length mismatch", func() {
		edges := []core.Edge{{S: 0, T: 1}}
		colors := []int32{1, 2}
		_, err := snapround.CleanPSLG(&points, &edges, &colors)
		require.ErrorIs(s.T(), err, core.ErrColorLengthMismatch)
	})
}

// TestWithIterationCapMultiplier verifies a generous explicit cap still
// reaches the same fixed point as the default.
func (s *CleanPSLGSuite) TestWithIterationCapMultiplier() {
	points := []core.Point{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}}
	edges := []core.Edge{{S: 0, T: 1}, {S: 2, T: 3}}

	modified, err := snapround.CleanPSLG(&points, &edges, nil, snapround.WithIterationCapMultiplier(32))
	require.NoError(s.T(), err)
	require.True(s.T(), modified)
	require.Len(s.T(), points, 5)
}

// TestWithIterationCapMultiplierPanicsOnNonPositive verifies the option's
// documented precondition.
func (s *CleanPSLGSuite) TestWithIterationCapMultiplierPanicsOnNonPositive() {
	require.Panics(s.T(), func() { snapround.WithIterationCapMultiplier(0) })
}

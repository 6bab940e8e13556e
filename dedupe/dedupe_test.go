package dedupe_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapround/core"
	"github.com/katalvlaran/snapround/dedupe"
)

func TestPointsNoMerges(t *testing.T) {
	t.Parallel()

	points := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	labels, err := dedupe.Points(&points, nil)
	require.NoError(t, err)
	require.Nil(t, labels)
	require.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, points)
}

func TestPointsMergesCoincident(t *testing.T) {
	t.Parallel()

	points := []core.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	labels, err := dedupe.Points(&points, nil)
	require.NoError(t, err)
	require.NotNil(t, labels)
	require.Equal(t, labels[0], labels[1])
	require.NotEqual(t, labels[0], labels[2])
	require.Len(t, points, 2)
}

func TestPointsExtendsWithRationalPoints(t *testing.T) {
	t.Parallel()

	points := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	ratPoints := []core.RationalPoint{{RX: big.NewRat(1, 1), RY: big.NewRat(0, 1)}}

	labels, err := dedupe.Points(&points, ratPoints)
	require.NoError(t, err)
	require.NotNil(t, labels)
	// The extended point (1,0) coincides with the existing point (1,0).
	require.Equal(t, labels[1], labels[2])
	require.Len(t, points, 2)
}

func TestEdgesDropsZeroLength(t *testing.T) {
	t.Parallel()

	edges := []core.ColoredEdge{{S: 0, T: 1}, {S: 1, T: 1}}
	changed := dedupe.Edges(&edges, nil, false)
	require.True(t, changed)
	require.Equal(t, []core.ColoredEdge{{S: 0, T: 1}}, edges)
}

func TestEdgesCanonicalizesAndDedupes(t *testing.T) {
	t.Parallel()

	edges := []core.ColoredEdge{{S: 0, T: 1}, {S: 1, T: 0}}
	changed := dedupe.Edges(&edges, nil, false)
	require.True(t, changed)
	require.Equal(t, []core.ColoredEdge{{S: 0, T: 1}}, edges)
}

func TestEdgesKeepsColoredDuplicatesSeparate(t *testing.T) {
	t.Parallel()

	edges := []core.ColoredEdge{{S: 0, T: 1, Color: 5}, {S: 1, T: 0, Color: 7}}
	changed := dedupe.Edges(&edges, nil, true)
	require.True(t, changed)
	require.Len(t, edges, 2)
	require.Equal(t, int32(5), edges[0].Color)
	require.Equal(t, int32(7), edges[1].Color)
}

func TestEdgesNoOp(t *testing.T) {
	t.Parallel()

	edges := []core.ColoredEdge{{S: 0, T: 1}}
	changed := dedupe.Edges(&edges, nil, false)
	require.False(t, changed)
	require.Equal(t, []core.ColoredEdge{{S: 0, T: 1}}, edges)
}

func TestEdgesEmpty(t *testing.T) {
	t.Parallel()

	var edges []core.ColoredEdge
	changed := dedupe.Edges(&edges, nil, false)
	require.False(t, changed)
}

package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapround/fixtures"
)

func TestGrid(t *testing.T) {
	t.Parallel()

	points, edges, err := fixtures.Grid(3, 4)
	require.NoError(t, err)
	require.Len(t, points, 12)
	require.Len(t, edges, 3*3+2*4) // horizontal + vertical links
}

func TestGridTooSmall(t *testing.T) {
	t.Parallel()

	_, _, err := fixtures.Grid(0, 4)
	require.ErrorIs(t, err, fixtures.ErrTooFewPoints)
}

func TestStar(t *testing.T) {
	t.Parallel()

	points, edges, err := fixtures.Star(5)
	require.NoError(t, err)
	require.Len(t, points, 5)
	require.Len(t, edges, 4)
	for _, e := range edges {
		require.Equal(t, 0, e.S)
	}
}

func TestStarTooSmall(t *testing.T) {
	t.Parallel()

	_, _, err := fixtures.Star(1)
	require.ErrorIs(t, err, fixtures.ErrTooFewPoints)
}

func TestDuplicateHeavy(t *testing.T) {
	t.Parallel()

	points, edges, err := fixtures.DuplicateHeavy(3)
	require.NoError(t, err)
	require.Len(t, points, 7) // 1 far point + 2*3 coincident pairs
	require.Len(t, edges, 6)
}

func TestWithSeedDeterministic(t *testing.T) {
	t.Parallel()

	p1, _, err := fixtures.Grid(2, 2, fixtures.WithSeed(42), fixtures.WithJitter(0.1))
	require.NoError(t, err)
	p2, _, err := fixtures.Grid(2, 2, fixtures.WithSeed(42), fixtures.WithJitter(0.1))
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

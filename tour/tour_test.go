package tour_test

import (
	"testing"

	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowtie is the self-crossing ordering of a 2×2 square's corners.
func bowtie() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
}

// TestNew_Validation covers the size and distinctness contracts.
func TestNew_Validation(t *testing.T) {
	_, err := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, tour.ErrTooFewPoints)

	_, err = tour.New(nil)
	assert.ErrorIs(t, err, tour.ErrTooFewPoints)

	dup := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	tr, err := tour.New(dup)
	require.NoError(t, err, "New must accept repeated points from manual input")
	assert.True(t, tr.HasDuplicates())

	_, err = tour.NewDistinct(dup)
	assert.ErrorIs(t, err, tour.ErrDuplicatePoint)

	tr, err = tour.NewDistinct(bowtie())
	require.NoError(t, err)
	assert.False(t, tr.HasDuplicates())
	assert.Equal(t, 4, tr.Len())
}

// TestNew_CopiesInput ensures the tour does not alias the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	pts := bowtie()
	tr, err := tour.New(pts)
	require.NoError(t, err)

	pts[0] = geom.Pt(9, 9)
	assert.Equal(t, geom.Pt(0, 0), tr.At(0))

	out := tr.Points()
	out[1] = geom.Pt(7, 7)
	assert.Equal(t, geom.Pt(2, 2), tr.At(1), "Points must return a copy")
}

// TestEdge_IncludesWrap verifies the last edge closes the polygon.
func TestEdge_IncludesWrap(t *testing.T) {
	tr, err := tour.New(bowtie())
	require.NoError(t, err)

	a, b := tr.Edge(0)
	assert.Equal(t, geom.Pt(0, 0), a)
	assert.Equal(t, geom.Pt(2, 2), b)

	a, b = tr.Edge(3)
	assert.Equal(t, geom.Pt(0, 2), a)
	assert.Equal(t, geom.Pt(0, 0), b, "edge n-1 wraps to the first point")
}

// TestReverse_TwoOptMove checks the bowtie uncrossing and value semantics.
func TestReverse_TwoOptMove(t *testing.T) {
	tr, err := tour.New(bowtie())
	require.NoError(t, err)

	fixed, err := tr.Reverse(1, 2)
	require.NoError(t, err)

	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}, fixed.Points())
	assert.InDelta(t, 8.0, fixed.Perimeter(), 1e-12)
	assert.Equal(t, bowtie(), tr.Points(), "source tour must not change")
}

// TestReverse_Involution verifies reversing a range twice restores the tour
// and that positions outside the range never move.
func TestReverse_Involution(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 4}, {X: -2, Y: 2}, {X: -1, Y: -3}, {X: 4, Y: -2}}
	tr, err := tour.New(pts)
	require.NoError(t, err)

	var i, j, k int
	for i = 0; i < tr.Len(); i++ {
		for j = i; j < tr.Len(); j++ {
			once, err := tr.Reverse(i, j)
			require.NoError(t, err)
			for k = 0; k < tr.Len(); k++ {
				if k < i || k > j {
					assert.Equal(t, tr.At(k), once.At(k), "position %d outside [%d,%d] moved", k, i, j)
				}
			}
			twice, err := once.Reverse(i, j)
			require.NoError(t, err)
			assert.True(t, tour.Equal(tr, twice), "Reverse(%d,%d) is not an involution", i, j)
		}
	}
}

// TestReverse_Bounds checks the range contract.
func TestReverse_Bounds(t *testing.T) {
	tr, err := tour.New(bowtie())
	require.NoError(t, err)

	for _, r := range [][2]int{{-1, 2}, {0, 4}, {3, 1}} {
		_, err = tr.Reverse(r[0], r[1])
		assert.ErrorIs(t, err, tour.ErrRangeOutOfBounds, "range %v", r)
	}
}

// TestEqualModuloRotation compares cycles independent of the start position.
func TestEqualModuloRotation(t *testing.T) {
	a, _ := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}})
	b, _ := tour.New([]geom.Point{{X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 0}})
	c, _ := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}})

	assert.True(t, tour.EqualModuloRotation(a, b))
	assert.False(t, tour.Equal(a, b))
	assert.False(t, tour.EqualModuloRotation(a, c), "opposite direction is a different sequence")
}

// TestString renders the closure marker.
func TestString(t *testing.T) {
	tr, _ := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}})
	assert.Equal(t, "[(0,0) (2,0) (1,1) | (0,0)]", tr.String())
	assert.Equal(t, "[]", tour.Tour{}.String())
}

package aco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTour_Validate(t *testing.T) {
	assert.True(t, NewTour([]int{0, 1, 2}, 0).Validate(3))
	assert.False(t, NewTour([]int{0, 1, 1}, 0).Validate(3)) // repeat
	assert.False(t, NewTour([]int{0, 1}, 0).Validate(3))    // wrong length
	assert.False(t, NewTour([]int{0, 1, 3}, 0).Validate(3)) // out of range
}

func TestTourLength_EdgeCases(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, TourLength(o, []int{0}))

	o2, err := NewDistanceOracle([]Point{{0, 0}, {5, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, TourLength(o2, []int{0, 1}), 1e-9)
}

func TestTourLength_IncludesClosingEdge(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, TourLength(o, []int{0, 1, 2, 3}), 1e-9)
}

func TestCopyTour_IsIndependent(t *testing.T) {
	orig := NewTour([]int{0, 1, 2}, 3)
	cp := CopyTour(orig)
	cp.Seq[0] = 99
	assert.Equal(t, 0, orig.Seq[0])
}

package aco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoOpt_Monotonicity(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 0}, {2, 1}})
	require.NoError(t, err)
	// deliberately scrambled tour
	tour := NewTour([]int{0, 2, 1, 3, 5, 4}, 0)
	tour.Length = TourLength(o, tour.Seq)
	before := tour.Length

	improve(o, &tour, false)

	assert.True(t, tour.Validate(6))
	assert.LessOrEqual(t, tour.Length, before+1e-9)
	assert.InDelta(t, TourLength(o, tour.Seq), tour.Length, 1e-9)
}

func TestTwoOpt_IdempotentAtLocalOptimum(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	tour := NewTour([]int{0, 2, 1, 3}, 0)
	tour.Length = TourLength(o, tour.Seq)

	improve(o, &tour, false)
	seq1 := append([]int(nil), tour.Seq...)
	len1 := tour.Length

	improve(o, &tour, false)
	assert.Equal(t, seq1, tour.Seq)
	assert.InDelta(t, len1, tour.Length, 1e-9)
}

func TestTwoOpt_NoopBelowN4(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {1, 1}})
	require.NoError(t, err)
	tour := NewTour([]int{0, 1, 2}, TourLength(o, []int{0, 1, 2}))
	before := append([]int(nil), tour.Seq...)
	improve(o, &tour, false)
	assert.Equal(t, before, tour.Seq)
}

func TestThreeOpt_MonotonicityAndValidity(t *testing.T) {
	pts := []Point{{0, 0}, {0, 2}, {1, 3}, {2, 2}, {2, 0}, {1, -1}, {3, 3}}
	o, err := NewDistanceOracle(pts)
	require.NoError(t, err)
	seq := []int{0, 3, 1, 4, 2, 6, 5}
	tour := NewTour(seq, TourLength(o, seq))
	before := tour.Length

	improve(o, &tour, true)

	assert.True(t, tour.Validate(len(pts)))
	assert.LessOrEqual(t, tour.Length, before+1e-9)
}

func TestThreeOpt_NoopBelowN6(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 2}})
	require.NoError(t, err)
	seq := []int{0, 1, 2, 3, 4}
	tour := NewTour(seq, TourLength(o, seq))
	before := append([]int(nil), tour.Seq...)
	threeOpt(o, &tour)
	assert.Equal(t, before, tour.Seq)
}

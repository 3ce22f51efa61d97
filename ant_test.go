package aco

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnt_VisitAlreadyVisitedFails(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}})
	require.NoError(t, err)
	tau := NewPheromone(2, 1.0, 0, 0)
	a := newAnt(o, tau, 1, 1)
	require.NoError(t, a.visit(0))
	assert.ErrorIs(t, a.visit(0), ErrProtocol)
}

func TestAnt_CompleteTourBeforeFullFails(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {2, 0}})
	require.NoError(t, err)
	tau := NewPheromone(3, 1.0, 0, 0)
	a := newAnt(o, tau, 1, 1)
	require.NoError(t, a.visit(0))
	_, err = a.completeTour()
	assert.ErrorIs(t, err, ErrIncompleteTour)
}

func TestConstructTour_ProducesValidPermutation(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 2}})
	require.NoError(t, err)
	tau := NewPheromone(5, 1.0, 0, 0)
	rng := rand.New(rand.NewSource(1))

	for start := 0; start < 5; start++ {
		tour, err := constructTour(o, tau, 1, 2, start, rng)
		require.NoError(t, err)
		assert.True(t, tour.Validate(5))
		assert.Equal(t, start, tour.Seq[0])
	}
}

func TestConstructTour_FallsBackToUniformWhenWeightsVanish(t *testing.T) {
	o, err := NewDistanceOracle([]Point{{0, 0}, {1, 0}, {2, 0}})
	require.NoError(t, err)
	// alpha=0 means tau has no effect but 1/d^beta would still matter
	// unless beta is also 0, which forces every candidate weight to 1 --
	// W>0 in that case, so instead zero the pheromone matrix AND use a
	// beta of 0 with tau=0 and alpha>0 to force every w_j to 0.
	tau := NewPheromone(3, 0, 0, 0)
	rng := rand.New(rand.NewSource(7))
	tour, err := constructTour(o, tau, 1, 0, 0, rng)
	require.NoError(t, err)
	assert.True(t, tour.Validate(3))
}

package aco

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPheromone_InitAndGet(t *testing.T) {
	p := NewPheromone(3, 2.0, 0, 0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 2.0, p.Get(i, j))
		}
	}
}

func TestPheromone_DepositIsSymmetric(t *testing.T) {
	p := NewPheromone(3, 0, 0, 0)
	p.Deposit(0, 1, 5.0)
	assert.Equal(t, 5.0, p.Get(0, 1))
	assert.Equal(t, 5.0, p.Get(1, 0))
}

func TestPheromone_EvaporateMultipliesAllEntries(t *testing.T) {
	p := NewPheromone(2, 10.0, 0, 0)
	p.Evaporate(0.5)
	assert.InDelta(t, 5.0, p.Get(0, 1), 1e-9)
	assert.InDelta(t, 5.0, p.Get(0, 0), 1e-9)
}

func TestPheromone_ClampEnforcesBounds(t *testing.T) {
	p := NewPheromone(2, 5.0, 1.0, 3.0)
	p.Deposit(0, 1, 100)
	p.Clamp()
	assert.LessOrEqual(t, p.Get(0, 1), 3.0)

	p.Evaporate(0.99999)
	p.Clamp()
	assert.GreaterOrEqual(t, p.Get(0, 1), 1.0)
}

func TestPheromone_ConcurrentDepositsAreSafeAndAccumulate(t *testing.T) {
	n := 10
	p := NewPheromone(n, 0, 0, 0)

	var wg sync.WaitGroup
	const rounds = 200
	wg.Add(rounds)
	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			p.Deposit(0, 1, 1.0)
			p.Deposit(1, 2, 1.0)
		}()
	}
	wg.Wait()

	assert.InDelta(t, float64(rounds), p.Get(0, 1), 1e-9)
	assert.InDelta(t, float64(rounds), p.Get(1, 2), 1e-9)
	// untouched cells remain symmetric and non-negative
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, p.Get(i, j), p.Get(j, i))
			assert.GreaterOrEqual(t, p.Get(i, j), 0.0)
		}
	}
}

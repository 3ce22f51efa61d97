package aco

import "sync"

// Pheromone is a symmetric n×n floating-point matrix τ with optional
// (τ_min, τ_max) bounds.
//
// Concurrency: Evaporate writes disjoint cells (the caller's fork-join
// phase fence is the only synchronization needed). Deposit
// must be safe under concurrent calls from many workers touching
// overlapping edges; since float64 has no portable lock-free add in this
// corpus's idiom, each row owns a sync.Mutex — deposits on disjoint rows
// never contend, and the mirrored (i,j)/(j,i) write for a single deposit
// takes both row locks in a fixed (min,max) order to avoid deadlock.
type Pheromone struct {
	n      int
	tau    [][]float64
	rowMu  []sync.Mutex
	tauMin float64
	tauMax float64
	clamp  bool
}

// NewPheromone allocates an n×n pheromone matrix initialized to value,
// with optional clamping bounds. tauMin/tauMax of (0,0) disables clamping.
func NewPheromone(n int, value float64, tauMin, tauMax float64) *Pheromone {
	p := &Pheromone{
		n:      n,
		tau:    make([][]float64, n),
		rowMu:  make([]sync.Mutex, n),
		tauMin: tauMin,
		tauMax: tauMax,
		clamp:  tauMin > 0 || tauMax > 0,
	}
	for i := range p.tau {
		p.tau[i] = make([]float64, n)
	}
	p.init(value)
	return p
}

// init sets every entry to value.
func (p *Pheromone) init(value float64) {
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			p.tau[i][j] = value
		}
	}
}

// Get reads τ[i][j]; symmetry lets callers query either direction.
func (p *Pheromone) Get(i, j int) float64 {
	p.rowMu[i].Lock()
	v := p.tau[i][j]
	p.rowMu[i].Unlock()
	return v
}

// Evaporate multiplies every entry by (1-rho). Safe to call with no
// concurrent Deposit in flight (evaporate-then-deposit ordering is the
// caller's responsibility). It runs on the calling goroutine, one row at a
// time under that row's lock.
func (p *Pheromone) Evaporate(rho float64) {
	factor := 1 - rho
	for i := 0; i < p.n; i++ {
		p.rowMu[i].Lock()
		row := p.tau[i]
		for j := range row {
			row[j] *= factor
		}
		p.rowMu[i].Unlock()
	}
}

// Deposit atomically adds amount to both (i,j) and (j,i).
func (p *Pheromone) Deposit(i, j int, amount float64) {
	if i == j {
		return
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	p.rowMu[lo].Lock()
	p.rowMu[hi].Lock()
	p.tau[i][j] += amount
	p.tau[j][i] += amount
	p.rowMu[hi].Unlock()
	p.rowMu[lo].Unlock()
}

// DepositTour deposits amount along every edge of a closed tour of the
// given sequence (including the wraparound edge).
func (p *Pheromone) DepositTour(seq []int, amount float64) {
	n := len(seq)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.Deposit(seq[i], seq[j], amount)
	}
}

// Clamp enforces (τ_min, τ_max) if configured; a no-op otherwise.
func (p *Pheromone) Clamp() {
	if !p.clamp {
		return
	}
	for i := 0; i < p.n; i++ {
		p.rowMu[i].Lock()
		row := p.tau[i]
		for j := range row {
			if p.tauMax > 0 && row[j] > p.tauMax {
				row[j] = p.tauMax
			}
			if row[j] < p.tauMin {
				row[j] = p.tauMin
			}
			if row[j] < 0 {
				row[j] = 0
			}
		}
		p.rowMu[i].Unlock()
	}
}

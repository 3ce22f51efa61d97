package aco

import (
	"math"
	"math/rand"
)

// selectionEpsilon floors distance in the heuristic weight to avoid a
// division by zero for coincident cities.
const selectionEpsilon = 1e-10

// ant is a single tour-building agent. Ants carry no cross-iteration state:
// a fresh ant is created for each iteration and discarded once its tour is
// recorded.
type ant struct {
	oracle    *DistanceOracle
	tau       *Pheromone
	alpha     float64
	beta      float64
	n         int
	visited   []bool
	seq       []int
	length    float64
	cur       int
	hasStart  bool
}

// newAnt creates a fresh ant bound to the given oracle and pheromone
// matrix, with selection exponents alpha/beta.
func newAnt(o *DistanceOracle, tau *Pheromone, alpha, beta float64) *ant {
	n := o.NumCities()
	return &ant{
		oracle:  o,
		tau:     tau,
		alpha:   alpha,
		beta:    beta,
		n:       n,
		visited: make([]bool, n),
		seq:     make([]int, 0, n),
	}
}

// visit marks city j visited and appends it to the ant's partial sequence.
// Returns ErrProtocol if j was already visited.
func (a *ant) visit(j int) error {
	if j < 0 || j >= a.n || a.visited[j] {
		return ErrProtocol
	}
	a.visited[j] = true
	a.seq = append(a.seq, j)
	if a.hasStart {
		a.length += a.oracle.Distance(a.cur, j)
	}
	a.cur = j
	a.hasStart = true
	return nil
}

// completeTour finalizes the ant's tour, closing the cycle back to the
// first visited city. Returns ErrIncompleteTour if not every city has been
// visited yet.
func (a *ant) completeTour() (Tour, error) {
	if len(a.seq) != a.n {
		return Tour{}, ErrIncompleteTour
	}
	total := a.length
	if a.n > 1 {
		total += a.oracle.Distance(a.seq[a.n-1], a.seq[0])
	}
	return Tour{Seq: a.seq, Length: total}, nil
}

// chooseNext performs roulette-wheel selection over the unvisited cities,
// using rng for any random draw.
//
//  1. Form the list U of unvisited cities.
//  2. Compute weights w_j = τ(cur,j)^α · (1/max(d(cur,j),ε))^β for j ∈ U.
//  3. If ΣW <= 0, pick uniformly at random from U.
//  4. Otherwise draw r ~ Uniform[0,W) and return the smallest-index j with
//     cumulative weight >= r.
func (a *ant) chooseNext(rng *rand.Rand) int {
	candidates := make([]int, 0, a.n)
	weights := make([]float64, 0, a.n)
	total := 0.0

	for j := 0; j < a.n; j++ {
		if a.visited[j] {
			continue
		}
		d := a.oracle.Distance(a.cur, j)
		if d < selectionEpsilon {
			d = selectionEpsilon
		}
		w := pow(a.tau.Get(a.cur, j), a.alpha) * pow(1.0/d, a.beta)
		candidates = append(candidates, j)
		weights = append(weights, w)
		total += w
	}

	if total <= 0 {
		return candidates[rng.Intn(len(candidates))]
	}

	r := rng.Float64() * total
	cum := 0.0
	for idx, j := range candidates {
		cum += weights[idx]
		if cum >= r {
			return j
		}
	}
	// Floating-point rounding may leave a residual; fall back to the last
	// candidate rather than panicking on an out-of-range index.
	return candidates[len(candidates)-1]
}

// constructTour builds a full tour starting from start, using rng for every
// random draw the ant makes. This is the only entry point a Colony should
// call: it owns the full visit-then-complete sequence so a caller can never
// observe a half-built ant.
func constructTour(o *DistanceOracle, tau *Pheromone, alpha, beta float64, start int, rng *rand.Rand) (Tour, error) {
	n := o.NumCities()
	a := newAnt(o, tau, alpha, beta)
	if err := a.visit(start); err != nil {
		return Tour{}, err
	}
	for len(a.seq) < n {
		next := a.chooseNext(rng)
		if err := a.visit(next); err != nil {
			return Tour{}, err
		}
	}
	return a.completeTour()
}

// pow is math.Pow with a fast path for the common exponents 0 and 1, since
// ants call this O(n) times per step.
func pow(base, exp float64) float64 {
	if exp == 0 {
		return 1
	}
	if exp == 1 {
		return base
	}
	return math.Pow(base, exp)
}

package aco

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

// ProgressFunc is invoked every CallbackInterval iterations. It is always
// invoked from the coordinator goroutine, never from a worker, and
// iteration is 1-indexed.
type ProgressFunc func(iteration int, bestLength float64, bestSeq []int, trace []float64)

// Colony owns the distance oracle, the pheromone matrix, and the
// best-so-far / trace state across repeated solves. A Colony may be solved
// multiple times; each Solve call re-initializes the pheromone matrix and
// clears the trace.
type Colony struct {
	oracle *DistanceOracle
	opts   Options

	tau      *Pheromone
	trace    []float64
	best     Tour
	bestSet  bool
	canceled int32 // atomic cancellation flag, see Cancel/solve loop

	onProgress ProgressFunc
}

// NewColony creates a colony bound to oracle with the given configuration.
// The pheromone matrix is not allocated here; each Solve call creates it
// at its operating value.
func NewColony(oracle *DistanceOracle, opts Options) (*Colony, error) {
	if oracle == nil {
		return nil, ErrInvalidInput
	}
	norm, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	return &Colony{oracle: oracle, opts: norm}, nil
}

// OnProgress registers the progress callback. It fires every
// Options.CallbackInterval iterations. Passing nil disables the callback.
func (c *Colony) OnProgress(fn ProgressFunc) {
	c.onProgress = fn
}

// Cancel cooperatively requests that Solve stop after the current
// iteration completes. Safe to call from any goroutine at any time.
func (c *Colony) Cancel() {
	atomic.StoreInt32(&c.canceled, 1)
}

func (c *Colony) isCanceled() bool {
	return atomic.LoadInt32(&c.canceled) == 1
}

// ConvergenceTrace returns the iteration-best length recorded for each
// iteration executed by the most recent Solve call.
func (c *Colony) ConvergenceTrace() []float64 {
	out := make([]float64, len(c.trace))
	copy(out, c.trace)
	return out
}

// init computes tau0 = m / C^nn (falling back to 1.0 when C^nn is
// non-positive or non-finite), fills tau with tau0, clears the trace, and
// resets the global best.
func (c *Colony) init() {
	n := c.oracle.NumCities()
	cnn := c.oracle.NearestNeighborTourLength(0)

	tau0 := 1.0
	if cnn > 0 && !math.IsInf(cnn, 0) && !math.IsNaN(cnn) {
		tau0 = float64(c.opts.NumAnts) / cnn
	}

	c.tau = NewPheromone(n, tau0, c.opts.TauMin, c.opts.TauMax)
	c.trace = c.trace[:0]
	c.best = Tour{}
	c.bestSet = false
}

// SolveResult is returned by Solve.
type SolveResult struct {
	Best      Tour
	Trace     []float64
	Cancelled bool
}

// Solve runs the colony to completion. maxIterations >= 1 runs exactly
// that many iterations;
// maxIterations < 0 runs until opts.ConvergenceThreshold consecutive
// iterations pass with no strict improvement in the global best.
func (c *Colony) Solve(maxIterations int) (SolveResult, error) {
	c.init()

	noImprove := 0
	iteration := 0

	for {
		if c.isCanceled() {
			return c.result(true), nil
		}
		if maxIterations >= 1 && iteration >= maxIterations {
			break
		}

		improvedGlobal, err := c.runIteration()
		if err != nil {
			return SolveResult{}, err
		}
		iteration++

		if improvedGlobal {
			noImprove = 0
		} else {
			noImprove++
		}

		if c.onProgress != nil && iteration%c.opts.CallbackInterval == 0 {
			c.onProgress(iteration, c.best.Length, append([]int(nil), c.best.Seq...), c.ConvergenceTrace())
		}

		if maxIterations < 0 && noImprove >= c.opts.ConvergenceThreshold {
			break
		}
	}

	return c.result(false), nil
}

// result builds the returned SolveResult and consumes any pending
// cancellation so the next Solve call starts uncancelled.
func (c *Colony) result(cancelled bool) SolveResult {
	atomic.StoreInt32(&c.canceled, 0)
	return SolveResult{
		Best:      CopyTour(c.best),
		Trace:     c.ConvergenceTrace(),
		Cancelled: cancelled,
	}
}

// runIteration executes the four ordered phases of one iteration: Construct,
// Improve(all), Track-best, Deposit. It returns whether the global best
// strictly improved this iteration.
func (c *Colony) runIteration() (bool, error) {
	n := c.oracle.NumCities()

	// --- Phase 1: Construct. One ant per worker goroutine, independent
	// and unordered, fork-join via sync.WaitGroup.
	tours := make([]Tour, c.opts.NumAnts)
	tourErrs := make([]error, c.opts.NumAnts)

	workers := c.constructWorkerCount()
	rngs := newWorkerRNG()

	if workers <= 1 {
		for i := 0; i < c.opts.NumAnts; i++ {
			tours[i], tourErrs[i] = c.buildAntTour(i, n, rngs.forWorker(0))
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		wg.Add(c.opts.NumAnts)
		for i := 0; i < c.opts.NumAnts; i++ {
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				// Each ant gets its own RNG stream keyed by its own index,
				// not by worker slot: semaphore occupancy only bounds
				// concurrency count, it does not guarantee which ants
				// overlap in time, so two live goroutines must never be
				// able to land on the same stream id.
				tours[i], tourErrs[i] = c.buildAntTour(i, n, rngs.forWorker(i))
			}(i)
		}
		wg.Wait()
	}

	for _, e := range tourErrs {
		if e != nil {
			return false, e
		}
	}

	// --- Phase 2: Improve (mode=all). The improved tours MUST be the ones
	// used for both best-tracking and deposit below: tours is mutated in
	// place and nothing downstream regenerates tours from raw ants.
	if c.opts.LocalSearch == LocalSearchAll {
		c.improveAll(tours, workers)
	}

	// --- Phase 3: Track best.
	iterBestIdx := 0
	for i := 1; i < len(tours); i++ {
		if tours[i].Length < tours[iterBestIdx].Length {
			iterBestIdx = i
		}
	}
	iterBest := tours[iterBestIdx]
	c.trace = append(c.trace, iterBest.Length)

	improvedGlobal := false
	if !c.bestSet || iterBest.Length < c.best.Length {
		c.best = CopyTour(iterBest)
		c.bestSet = true
		improvedGlobal = true
	}
	if c.opts.LocalSearch == LocalSearchBest {
		improve(c.oracle, &c.best, c.opts.Use3Opt)
	}

	// --- Phase 4: Deposit. Evaporate strictly before any deposit.
	c.tau.Evaporate(c.opts.Rho)
	c.deposit(tours, iterBestIdx)
	if c.opts.Elitist && c.bestSet {
		c.tau.DepositTour(c.best.Seq, c.opts.ElitistWeight*c.opts.Q/c.best.Length)
	}
	c.tau.Clamp()

	return improvedGlobal, nil
}

// constructWorkerCount resolves opts.Parallel/NumWorkers: run serially
// below ~8 ants, and cap the worker count used during the fork-join phases
// to roughly 2m otherwise, since more goroutines than that just add
// scheduling overhead for this little per-ant work.
func (c *Colony) constructWorkerCount() int {
	if !c.opts.Parallel || c.opts.NumAnts < 8 {
		return 1
	}
	workers := c.opts.NumWorkers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if maxWorkers := 2 * c.opts.NumAnts; workers > maxWorkers {
		workers = maxWorkers
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// buildAntTour constructs the tour for ant index i, choosing its start city
// per opts.DistinctStarts.
func (c *Colony) buildAntTour(i, n int, rng *rand.Rand) (Tour, error) {
	start := i % n
	if !c.opts.DistinctStarts {
		start = rng.Intn(n)
	}
	return constructTour(c.oracle, c.tau, c.opts.Alpha, c.opts.Beta, start, rng)
}

// improveAll applies improve() to every ant's tour, parallelized the same
// way Construct is (independent per-tour work, fork-join via WaitGroup).
func (c *Colony) improveAll(tours []Tour, workers int) {
	if workers <= 1 {
		for i := range tours {
			improve(c.oracle, &tours[i], c.opts.Use3Opt)
		}
		return
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	wg.Add(len(tours))
	for i := range tours {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			improve(c.oracle, &tours[i], c.opts.Use3Opt)
		}(i)
	}
	wg.Wait()
}

// deposit applies the configured pheromone deposit rule to this
// iteration's tours.
func (c *Colony) deposit(tours []Tour, iterBestIdx int) {
	switch c.opts.PheromoneModeOpt {
	case ModeAll:
		for _, t := range tours {
			c.tau.DepositTour(t.Seq, c.opts.Q/t.Length)
		}

	case ModeIterationBest:
		t := tours[iterBestIdx]
		c.tau.DepositTour(t.Seq, c.opts.Q/t.Length)

	case ModeGlobalBest:
		c.tau.DepositTour(c.best.Seq, c.opts.Q/c.best.Length)

	case ModeRank:
		ranked := append([]Tour(nil), tours...)
		sort.Slice(ranked, func(a, b int) bool { return ranked[a].Length < ranked[b].Length })
		k := c.opts.RankSize
		if k > len(ranked) {
			k = len(ranked)
		}
		for rank := 0; rank < k; rank++ {
			weight := float64(k - rank) // 1-indexed: best deposits most
			c.tau.DepositTour(ranked[rank].Seq, weight*c.opts.Q/ranked[rank].Length)
		}
	}
}

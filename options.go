package aco

// PheromoneMode selects which ants deposit pheromone at the end of an
// iteration.
type PheromoneMode int

const (
	// ModeAll has every ant deposit along its own tour (classic Ant System
	// update rule).
	ModeAll PheromoneMode = iota

	// ModeIterationBest has only the shortest tour of the current
	// iteration deposit.
	ModeIterationBest

	// ModeGlobalBest has only the best tour seen since solve() began
	// deposit (the Ant Colony System / Max-Min Ant System update rule).
	ModeGlobalBest

	// ModeRank has the top RankSize tours of the iteration deposit,
	// weighted by rank.
	ModeRank
)

// LocalSearchMode selects where the 2-opt/3-opt improver is applied during
// an iteration.
type LocalSearchMode int

const (
	// LocalSearchNone never runs the improver.
	LocalSearchNone LocalSearchMode = iota

	// LocalSearchBest runs the improver once per iteration, on the
	// iteration's (possibly just-updated) global-best tour.
	LocalSearchBest

	// LocalSearchAll runs the improver on every ant's tour before
	// best-tracking and deposit use those tours.
	LocalSearchAll
)

// Options is the exhaustive configuration record for a Colony.
// The zero value is not meaningful; start from DefaultOptions and override
// fields, following the package's Options / DefaultOptions convention.
type Options struct {
	// NumAnts is the colony size per iteration. Must be >= 1.
	NumAnts int

	// Alpha is the pheromone exponent in the selection weight. Must be >= 0.
	Alpha float64

	// Beta is the heuristic exponent in the selection weight. Must be >= 0.
	Beta float64

	// Rho is the fraction of pheromone evaporated per iteration, in (0,1].
	Rho float64

	// Q is the deposit constant: amount = Q / tour_length. Must be > 0.
	Q float64

	// DistinctStarts, if true, starts ant i at city (i mod n); otherwise
	// each ant starts at a uniformly random city.
	DistinctStarts bool

	// PheromoneModeOpt selects which ants deposit. Default ModeAll.
	PheromoneModeOpt PheromoneMode

	// Elitist, if true, adds an extra deposit of the global-best tour
	// weighted by ElitistWeight every iteration.
	Elitist bool

	// ElitistWeight multiplies the extra elitist deposit. Must be >= 0.
	// Zero value means "use NumAnts" (see DefaultOptions).
	ElitistWeight float64

	// RankSize is the number of top ants that deposit in ModeRank. Zero
	// value means "use NumAnts/2" (see DefaultOptions).
	RankSize int

	// LocalSearch selects where the improver runs. Default LocalSearchNone.
	LocalSearch LocalSearchMode

	// Use3Opt, if true, runs 3-opt after 2-opt wherever the improver runs.
	Use3Opt bool

	// Parallel enables worker parallelism during Construct and, with
	// LocalSearchAll, during Improve. Deposit is not parallelized: it always
	// runs on the coordinator goroutine.
	Parallel bool

	// NumWorkers: 0 = auto (GOMAXPROCS), 1 = serial, >=2 = explicit count.
	NumWorkers int

	// TauMin and TauMax optionally bound the pheromone matrix. Both zero
	// disables clamping.
	TauMin float64
	TauMax float64

	// MaxIterations is validated by NewColony (zero is rejected), but
	// Solve does not read it: the iteration budget is Solve's own
	// maxIterations argument (>= 1 runs exactly that many iterations; a
	// negative value runs until ConvergenceThreshold consecutive
	// iterations pass with no strict improvement in the global best).
	MaxIterations int

	// ConvergenceThreshold is the number of consecutive non-improving
	// iterations that ends a Converge-mode solve. Must be >= 1. Default
	// 200.
	ConvergenceThreshold int

	// CallbackInterval emits progress every N iterations (1-indexed).
	// Must be >= 1. Default 10.
	CallbackInterval int
}

// DefaultOptions returns a populated Options record with reasonable
// defaults. Callers are expected to override NumAnts/Alpha/Beta/Rho/Q at
// minimum.
func DefaultOptions() Options {
	return Options{
		NumAnts:              20,
		Alpha:                1.0,
		Beta:                 2.0,
		Rho:                  0.5,
		Q:                    100.0,
		DistinctStarts:       false,
		PheromoneModeOpt:     ModeAll,
		Elitist:              false,
		ElitistWeight:        0, // resolved to NumAnts in normalize()
		RankSize:             0, // resolved to NumAnts/2 in normalize()
		LocalSearch:          LocalSearchNone,
		Use3Opt:              false,
		Parallel:             true,
		NumWorkers:           0,
		TauMin:               0,
		TauMax:               0,
		MaxIterations:        100,
		ConvergenceThreshold: 200,
		CallbackInterval:     10,
	}
}

// normalize resolves the "default means 0" fields (ElitistWeight, RankSize)
// against the colony size and validates the rest, returning ErrInvalidInput
// on an out-of-range field. It never mutates the caller's copy in place;
// it returns a normalized copy.
func (o Options) normalize() (Options, error) {
	if o.NumAnts < 1 {
		return o, ErrInvalidInput
	}
	if o.Alpha < 0 || o.Beta < 0 {
		return o, ErrInvalidInput
	}
	if o.Rho <= 0 || o.Rho > 1 {
		return o, ErrInvalidInput
	}
	if o.Q <= 0 {
		return o, ErrInvalidInput
	}
	if o.ElitistWeight < 0 {
		return o, ErrInvalidInput
	}
	if o.RankSize < 0 {
		return o, ErrInvalidInput
	}
	if o.TauMin < 0 || o.TauMax < 0 {
		return o, ErrInvalidInput
	}
	if o.TauMax > 0 && o.TauMin > o.TauMax {
		return o, ErrInvalidInput
	}
	if o.MaxIterations == 0 {
		return o, ErrInvalidInput
	}
	if o.ConvergenceThreshold < 1 {
		return o, ErrInvalidInput
	}
	if o.CallbackInterval < 1 {
		return o, ErrInvalidInput
	}
	switch o.PheromoneModeOpt {
	case ModeAll, ModeIterationBest, ModeGlobalBest, ModeRank:
	default:
		return o, ErrProtocol
	}
	switch o.LocalSearch {
	case LocalSearchNone, LocalSearchBest, LocalSearchAll:
	default:
		return o, ErrProtocol
	}

	norm := o
	if norm.ElitistWeight == 0 {
		norm.ElitistWeight = float64(norm.NumAnts)
	}
	if norm.RankSize == 0 {
		norm.RankSize = norm.NumAnts / 2
	}
	if norm.RankSize > norm.NumAnts {
		norm.RankSize = norm.NumAnts
	}
	return norm, nil
}

// hasTauBounds reports whether clamping is active.
func (o Options) hasTauBounds() bool {
	return o.TauMin > 0 || o.TauMax > 0
}

package aco

import "errors"

// Sentinel errors returned by the engine. Follows the flat errors.New
// convention (see DESIGN.md) rather than a wrapping library: every error
// site here is a leaf condition, never one that needs to carry a wrapped
// cause.
var (
	// ErrInvalidInput covers malformed construction-time input: n < 1, a
	// non-square or asymmetric distance matrix, non-finite/negative
	// entries, or an out-of-range configuration parameter.
	ErrInvalidInput = errors.New("aco: invalid input")

	// ErrProtocol covers misuse of the Ant state machine (visiting an
	// already-visited or out-of-range city) and an unrecognized
	// PheromoneMode/LocalSearchMode value in Options.
	ErrProtocol = errors.New("aco: protocol error")

	// ErrIncompleteTour is returned when an ant's tour is completed before
	// every city has been visited. constructTour only completes a tour once
	// every city is visited, so Solve does not return it in practice.
	ErrIncompleteTour = errors.New("aco: incomplete tour")
)

// Package aco solves the symmetric Euclidean Travelling Salesman Problem
// with an Ant Colony Optimization metaheuristic, augmented by 2-opt/3-opt
// local-search refinement.
//
// The package is the optimization engine only: build a DistanceOracle from
// coordinates (or a prebuilt matrix), build a Colony from the oracle and an
// Options record, then call Solve. TSPLIB parsing, CLI front ends, and
// transport/UI layers are deliberately outside this package's scope.
//
// This package descends from a family of small single-ant-colony solvers
// (Ant System / Ant Colony System / Max-Min Ant System) generalized behind
// one Options record: PheromoneModeOpt selects between the AS-style "every
// ant deposits" rule, the ACS-style "only the best deposits" rule, and a
// rank-weighted rule, while TauMin/TauMax reproduce MMAS-style clamping.
package aco

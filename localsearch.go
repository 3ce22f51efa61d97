package aco

import "math"

// localSearchEps is the minimal strictly-better improvement accepted by
// 2-opt/3-opt.
const localSearchEps = 1e-9

// improve runs 2-opt then, if use3Opt is requested, 3-opt, on tour in
// place. After either pass the tour's stored length is recomputed from the
// sequence.
func improve(o *DistanceOracle, tour *Tour, use3Opt bool) {
	twoOpt(o, tour)
	if use3Opt {
		threeOpt(o, tour)
	}
}

// twoOpt repeatedly scans all pairs (i,j) with 0 <= i < j-1 <= n-2 (skipping
// the wraparound pair i=0, j=n-1), reversing seq[i+1..j] whenever that
// strictly improves the tour by more than localSearchEps. Sweeps repeat
// until a full sweep makes no improving move. Requires n >= 4; a no-op
// otherwise.
func twoOpt(o *DistanceOracle, tour *Tour) {
	n := len(tour.Seq)
	if n < 4 {
		return
	}
	seq := tour.Seq

	for {
		improved := false
		for i := 0; i <= n-3; i++ {
			for j := i + 2; j <= n-1; j++ {
				if i == 0 && j == n-1 {
					continue // wraparound pair: no-op by construction
				}
				a, b := seq[i], seq[i+1]
				c, d := seq[j], seq[(j+1)%n]

				delta := o.Distance(a, c) + o.Distance(b, d) - o.Distance(a, b) - o.Distance(c, d)
				if delta < -localSearchEps {
					reverseSegment(seq, i+1, j)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	tour.Length = TourLength(o, seq)
}

func reverseSegment(seq []int, i, j int) {
	for i < j {
		seq[i], seq[j] = seq[j], seq[i]
		i++
		j--
	}
}

// threeOpt evaluates, for every triple i < j < k of edge positions
// (skipping the wrap triple), the four non-trivial reconnections of the
// three segments created by removing edges (i,i+1), (j,j+1), (k,k+1):
// reverse first segment, reverse second segment, reverse both, and swap
// segments. The best of the four (largest improvement, below -eps) is
// applied as a full rebuild of the sequence. Sweeps repeat until no
// improving triple is found. Requires n >= 6; a no-op otherwise.
//
// Only four of the seven classical 3-opt reconnections are enumerated; the
// other three (C'B', CB' and C'B, writing X' for a reversed segment) are
// never tried, so a tour this returns need not be 3-opt optimal under
// those moves.
func threeOpt(o *DistanceOracle, tour *Tour) {
	n := len(tour.Seq)
	if n < 6 {
		return
	}
	seq := tour.Seq

	for {
		improved := false

		for i := 0; i <= n-6; i++ {
			for j := i + 2; j <= n-4; j++ {
				for k := j + 2; k <= n-2; k++ {
					if i == 0 && k == n-2 {
						continue // wrap triple: shares an edge with the implicit closing edge
					}

					bestDelta, bestSeq := bestThreeOptReconnection(o, seq, i, j, k)
					if bestDelta < -localSearchEps {
						seq = bestSeq
						improved = true
					}
				}
			}
		}

		if !improved {
			break
		}
	}

	tour.Seq = seq
	tour.Length = TourLength(o, seq)
}

// bestThreeOptReconnection evaluates the four reconnection patterns below
// and returns the best (delta, resulting sequence) pair.
// segments: A = seq[0..i], B = seq[i+1..j], C = seq[j+1..k], D = seq[k+1..n-1].
// Delta is computed against the whole current tour length rather than just
// the three removed/replaced edges: both quantities include every edge
// outside the three touched positions identically, so the difference is
// the same either way, and comparing whole-tour lengths avoids an
// easy-to-get-wrong accounting of which edges the four patterns actually
// replace.
func bestThreeOptReconnection(o *DistanceOracle, seq []int, i, j, k int) (float64, []int) {
	n := len(seq)
	curLen := TourLength(o, seq)

	a := seq[0 : i+1]
	b := seq[i+1 : j+1]
	c := seq[j+1 : k+1]
	d := seq[k+1 : n]

	candidates := [][]int{
		concat(a, reversed(b), c, d),            // reverse first segment
		concat(a, b, reversed(c), d),             // reverse second segment
		concat(a, reversed(b), reversed(c), d),   // reverse both
		concat(a, c, b, d),                       // swap segments
	}

	bestDelta := math.Inf(1)
	var bestSeq []int
	for _, cand := range candidates {
		delta := TourLength(o, cand) - curLen
		if delta < bestDelta {
			bestDelta = delta
			bestSeq = cand
		}
	}
	return bestDelta, bestSeq
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for idx, v := range s {
		out[len(s)-1-idx] = v
	}
	return out
}

func concat(parts ...[]int) []int {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]int, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

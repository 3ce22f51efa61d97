package aco

// Tour is an immutable-by-convention record: an ordered city sequence of
// length n plus its total cycle length. The sequence is open — Seq has
// exactly n entries and the closing edge Seq[n-1]->Seq[0] is implied, which
// keeps the n=1/n=2 edge cases simple.
type Tour struct {
	Seq    []int
	Length float64
}

// NewTour constructs a Tour from a sequence and a precomputed length. No
// validation is performed here; call Validate when the caller's sequence
// provenance is not already trusted (e.g. at an API boundary).
func NewTour(seq []int, length float64) Tour {
	return Tour{Seq: seq, Length: length}
}

// Validate returns true iff Seq has exactly n entries, each in [0,n), with
// no repeats — i.e. Seq is a permutation of 0..n-1.
func (t Tour) Validate(n int) bool {
	if len(t.Seq) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range t.Seq {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// TourLength computes the cycle length of seq against the oracle, including
// the closing edge back to seq[0]. n=1 yields 0; n=2 yields 2*d(0,1).
func TourLength(o *DistanceOracle, seq []int) float64 {
	n := len(seq)
	if n <= 1 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += o.Distance(seq[i], seq[j])
	}
	return total
}

// CopyTour returns an independent copy of a tour's sequence.
func CopyTour(t Tour) Tour {
	seq := make([]int, len(t.Seq))
	copy(seq, t.Seq)
	return Tour{Seq: seq, Length: t.Length}
}

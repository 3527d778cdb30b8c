package scheduler

import (
	"math/big"
	"slices"
)

// Greedy returns the records in greedy order together with the impact of
// that order. The input slice is left untouched. Records with equal ratios
// keep their input order. Every record must be non-negative, as Parse
// guarantees; negative values have no defined place in the order.
//
// Sorting is O(n log n); the impact pass is O(n).
func Greedy(records []Record) (Schedule, *big.Int) {
	order := make(Schedule, len(records))
	copy(order, records)
	slices.SortStableFunc(order, func(a, b Record) int {
		switch {
		case a.before(b):
			return -1
		case b.before(a):
			return 1
		default:
			return 0
		}
	})
	return order, Impact(order)
}

// Impact returns the sum over records of (elapsed time once the record
// completes) * weight, taking records in the given order.
func Impact(records []Record) *big.Int {
	var (
		elapsed = new(big.Int)
		impact  = new(big.Int)
		term    = new(big.Int)
		w       = new(big.Int)
	)
	for _, r := range records {
		elapsed.Add(elapsed, term.SetInt64(r.Duration))
		impact.Add(impact, term.Mul(elapsed, w.SetInt64(r.Weight)))
	}
	return impact
}

// IsLocallyOptimal reports whether no exchange of two adjacent records in s
// would lower its impact.
func IsLocallyOptimal(s Schedule) bool {
	for i := 1; i < len(s); i++ {
		if s[i].before(s[i-1]) {
			return false
		}
	}
	return true
}

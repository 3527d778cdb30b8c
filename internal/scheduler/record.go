package scheduler

import (
	"fmt"
	"math/bits"
	"strings"
)

// Record is a single battle: how long it takes and how much each unit of
// elapsed time costs while it is still pending. Both fields are
// non-negative.
type Record struct {
	Duration int64
	Weight   int64
}

// String renders the record as "[duration, weight]".
func (r Record) String() string {
	return fmt.Sprintf("[%d, %d]", r.Duration, r.Weight)
}

// before reports whether r must be fought strictly before o, i.e.
// r.Duration/r.Weight < o.Duration/o.Weight. Products are taken in 128 bits
// so no input can overflow the comparison. A zero weight is an infinite
// ratio. The empty record {0, 0} has no ratio and is placed first; it does
// not change the impact wherever it goes. Both records must be non-negative.
func (r Record) before(o Record) bool {
	if r.empty() || o.empty() {
		return r.empty() && !o.empty()
	}
	lhsHi, lhsLo := bits.Mul64(uint64(r.Duration), uint64(o.Weight))
	rhsHi, rhsLo := bits.Mul64(uint64(o.Duration), uint64(r.Weight))
	if lhsHi != rhsHi {
		return lhsHi < rhsHi
	}
	return lhsLo < rhsLo
}

func (r Record) empty() bool {
	return r.Duration == 0 && r.Weight == 0
}

// Schedule is an ordered sequence of records.
type Schedule []Record

// String renders the schedule as "[[d, w], [d, w], ...]".
func (s Schedule) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Package scheduler computes the order in which a set of battles should be
// fought so that the total weighted completion time ("impact") is minimal.
//
// Each battle is a Record with a duration and a weight. Sorting by the
// ratio duration/weight is optimal: any adjacent pair out of ratio order can
// be exchanged without increasing the impact. The ratio is never computed
// directly; records are compared by cross-multiplication so that a zero
// weight is a valid input rather than a division error.
package scheduler

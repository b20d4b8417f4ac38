// Package interval provides a generic bounded range type with explicit
// inclusive/exclusive boundaries, and the Allocation specialization used to
// carve the normalized [0,1) identifier space into traffic buckets.
//
// # Usage
//
// Build ranges with the boundary-specific constructors:
//
//	r := interval.ClosedOpen(0.0, 0.5)
//	r.Contains(0.0)  // true
//	r.Contains(0.5)  // false
//
// Allocations are ranges over the unit interval:
//
//	a := interval.Percentage(25) // [0, 0.25)
//	a.Contains(spot)
//
// Percentage buckets are always half-open at the upper bound, so adjacent
// buckets never overlap and a spot of exactly 0 always lands in a non-empty
// bucket.
//
// Ranges hold no state beyond their bounds and are safe for concurrent use.
package interval

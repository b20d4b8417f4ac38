package interval

// Allocation is a traffic bucket: a sub-range of the normalized [0,1)
// identifier space assigned to a variant.
type Allocation = Range[float64]

// Percentage returns the allocation covering the first p percent of the
// identifier space. The bucket is half-open, [0, p/100), so adjacent
// percentage buckets built from cumulative offsets never overlap. Values of
// p outside [0, 100] are clamped.
func Percentage(p float64) Allocation {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return ClosedOpen(0, p/100)
}

// Full returns the allocation covering the entire identifier space, [0, 1).
func Full() Allocation {
	return ClosedOpen(0.0, 1.0)
}

package interval

import "cmp"

// Range is a bounded interval over an ordered type. Each bound is
// independently inclusive or exclusive, giving the four usual boundary
// combinations.
type Range[T cmp.Ordered] struct {
	Min          T
	Max          T
	MinInclusive bool
	MaxInclusive bool
}

// Closed returns the range [min, max].
func Closed[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max, MinInclusive: true, MaxInclusive: true}
}

// Open returns the range (min, max).
func Open[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// ClosedOpen returns the range [min, max).
func ClosedOpen[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max, MinInclusive: true}
}

// OpenClosed returns the range (min, max].
func OpenClosed[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max, MaxInclusive: true}
}

// Contains reports whether v lies inside the range, honoring the boundary
// inclusivity of each bound.
func (r Range[T]) Contains(v T) bool {
	switch {
	case v < r.Min || v > r.Max:
		return false
	case v == r.Min && !r.MinInclusive:
		return false
	case v == r.Max && !r.MaxInclusive:
		return false
	}
	return true
}

// IsEmpty reports whether no value can satisfy Contains.
func (r Range[T]) IsEmpty() bool {
	if r.Min > r.Max {
		return true
	}
	if r.Min == r.Max {
		return !(r.MinInclusive && r.MaxInclusive)
	}
	return false
}

package feature

import (
	"github.com/dmitrymomot/experiments/condition"
	"github.com/dmitrymomot/experiments/interval"
)

// Feature is a named capability offering one or more variants. Features are
// published by providers and treated as immutable: the evaluation engine
// only ever reads them, and providers replace whole snapshots instead of
// mutating published values.
type Feature struct {
	Name         string
	ProviderName string
	Enabled      bool
	// Salt is mixed into allocation hashing to decorrelate bucketing
	// across features sharing an identifier.
	Salt string
	// AllocationUnit optionally names the context attribute used as the
	// bucketing identifier, overriding the default resolution rule.
	AllocationUnit string
	// Filters gate the whole feature; all must be satisfied.
	Filters  []PropertyFilter
	Variants []Variant
}

// Variant is one concrete configuration choice within a feature, gated by
// an allocation bucket and its own filters.
type Variant struct {
	// ID is unique within the owning feature.
	ID string
	// Allocation is the sub-range of the [0,1) identifier space this
	// variant claims.
	Allocation interval.Allocation
	// Filters gate the variant; all must be satisfied.
	Filters []PropertyFilter
	// Priority breaks ties between variants matching the same spot; lower
	// wins, nil sorts last.
	Priority *int
	// Settings is the variant's JSON-shaped configuration payload, as
	// produced by encoding/json or yaml decoding into any.
	Settings any
}

// PropertyFilter binds a condition to the named context attribute it is
// evaluated against.
type PropertyFilter struct {
	Property  string
	Condition condition.Condition
}

// Variant returns the variant with the given id, or nil.
func (f *Feature) Variant(id string) *Variant {
	for i := range f.Variants {
		if f.Variants[i].ID == id {
			return &f.Variants[i]
		}
	}
	return nil
}

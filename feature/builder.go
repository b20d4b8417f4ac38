package feature

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/experiments/condition"
	"github.com/dmitrymomot/experiments/interval"
)

// Option configures a feature built with New.
type Option func(*Feature)

// WithSalt sets the allocation salt. Features without an explicit salt hash
// with their name, so distinct features still bucket independently.
func WithSalt(salt string) Option {
	return func(f *Feature) { f.Salt = salt }
}

// WithEnabled toggles the feature; features are enabled by default.
func WithEnabled(enabled bool) Option {
	return func(f *Feature) { f.Enabled = enabled }
}

// WithAllocationUnit names the context attribute used as the bucketing
// identifier instead of the default resolution rule.
func WithAllocationUnit(attribute string) Option {
	return func(f *Feature) { f.AllocationUnit = attribute }
}

// WithFilter adds a feature-level filter on the named context attribute.
func WithFilter(property string, cond condition.Condition) Option {
	return func(f *Feature) {
		f.Filters = append(f.Filters, PropertyFilter{Property: property, Condition: cond})
	}
}

// WithVariant adds a variant. Variants default to the full [0,1) allocation.
func WithVariant(id string, opts ...VariantOption) Option {
	return func(f *Feature) {
		v := Variant{ID: id, Allocation: interval.Full()}
		for _, opt := range opts {
			opt(&v)
		}
		f.Variants = append(f.Variants, v)
	}
}

// VariantOption configures a variant built with WithVariant.
type VariantOption func(*Variant)

// VariantAllocation sets the variant's traffic bucket.
func VariantAllocation(a interval.Allocation) VariantOption {
	return func(v *Variant) { v.Allocation = a }
}

// VariantPercentage allocates the first p percent of traffic to the variant.
func VariantPercentage(p float64) VariantOption {
	return func(v *Variant) { v.Allocation = interval.Percentage(p) }
}

// VariantPriority sets the tie-break priority; lower wins over higher, and
// any explicit priority wins over none.
func VariantPriority(p int) VariantOption {
	return func(v *Variant) { v.Priority = &p }
}

// VariantFilter adds a variant-level filter on the named context attribute.
func VariantFilter(property string, cond condition.Condition) VariantOption {
	return func(v *Variant) {
		v.Filters = append(v.Filters, PropertyFilter{Property: property, Condition: cond})
	}
}

// VariantSettings sets the variant's configuration payload.
func VariantSettings(settings any) VariantOption {
	return func(v *Variant) { v.Settings = settings }
}

// New builds a feature code-first. The feature is enabled by default and
// salts allocation hashing with its own name unless WithSalt overrides it.
func New(name string, opts ...Option) (Feature, error) {
	if name == "" {
		return Feature{}, errors.Join(ErrInvalidFeature, errors.New("feature name cannot be empty"))
	}

	f := Feature{Name: name, Enabled: true, Salt: name}
	for _, opt := range opts {
		opt(&f)
	}

	seen := make(map[string]struct{}, len(f.Variants))
	for _, v := range f.Variants {
		if v.ID == "" {
			return Feature{}, errors.Join(ErrInvalidVariant, fmt.Errorf("feature %q: variant id cannot be empty", name))
		}
		if _, dup := seen[v.ID]; dup {
			return Feature{}, errors.Join(ErrDuplicateVariant, fmt.Errorf("feature %q: variant %q", name, v.ID))
		}
		seen[v.ID] = struct{}{}
		if v.Allocation.Min < 0 || v.Allocation.Max > 1 {
			return Feature{}, errors.Join(ErrInvalidVariant, fmt.Errorf("feature %q: variant %q allocation outside [0,1]", name, v.ID))
		}
	}

	return f, nil
}

// MustNew works like New but panics on an invalid definition. Useful for
// static code-first feature sets where a bad definition should prevent
// startup.
func MustNew(name string, opts ...Option) Feature {
	f, err := New(name, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build feature: %v", err))
	}
	return f
}

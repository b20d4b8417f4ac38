package provider

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/experiments/feature"
)

// Static serves a fixed feature snapshot from memory. Replace publishes a
// new snapshot with an atomic pointer swap, so concurrent evaluations see
// either the old or the new set in full, never a partial one. It is useful
// for code-first feature sets and as the inner provider behind Cached.
type Static struct {
	name     string
	snapshot atomic.Pointer[[]feature.Feature]
}

// NewStatic creates a provider serving the given features.
func NewStatic(name string, features ...feature.Feature) *Static {
	s := &Static{name: name}
	s.Replace(features)
	return s
}

// Name implements feature.Provider.
func (s *Static) Name() string { return s.name }

// Replace atomically publishes a new snapshot. The features are stamped
// with the provider name; the passed slice must not be mutated afterwards.
func (s *Static) Replace(features []feature.Feature) {
	snapshot := make([]feature.Feature, len(features))
	for i, f := range features {
		if f.ProviderName == "" {
			f.ProviderName = s.name
		}
		snapshot[i] = f
	}
	s.snapshot.Store(&snapshot)
}

// GetFeatures implements feature.Provider.
func (s *Static) GetFeatures(ctx context.Context) ([]feature.Feature, error) {
	return *s.snapshot.Load(), nil
}

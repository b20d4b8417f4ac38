package feature

import (
	"context"

	"github.com/dmitrymomot/experiments/targeting"
)

// Provider supplies an ordered feature snapshot. Implementations may be
// backed by static configuration, a code-first builder, a file, or a remote
// source with its own cache; the evaluation engine only depends on this
// contract. GetFeatures must honor ctx cancellation while fetching and must
// return a snapshot that is never mutated after publication.
type Provider interface {
	// Name identifies the provider in evaluation metadata.
	Name() string

	// GetFeatures returns the current feature snapshot in evaluation
	// order.
	GetFeatures(ctx context.Context) ([]Feature, error)
}

// Override is a forced variant selection produced by an OverrideProvider.
type Override struct {
	VariantID    string
	ProviderName string
}

// OverrideProvider can pin a feature to a specific variant, bypassing
// allocation and filter matching entirely. Returning a nil Override means
// no override applies.
type OverrideProvider interface {
	TryOverride(ctx context.Context, f Feature, tc targeting.Context) (*Override, error)
}

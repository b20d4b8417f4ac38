package provider

import (
	"context"
	"sync"

	"github.com/dmitrymomot/experiments/feature"
	"github.com/dmitrymomot/experiments/targeting"
)

// StaticOverride pins features to specific variants by name. It backs kill
// switches and QA forcing, where a variant must win regardless of
// allocation and filters.
type StaticOverride struct {
	name string
	mu   sync.RWMutex
	pins map[string]string // feature name -> variant id
}

// NewStaticOverride creates an override provider with the given pins.
func NewStaticOverride(name string, pins map[string]string) *StaticOverride {
	o := &StaticOverride{name: name, pins: make(map[string]string, len(pins))}
	for f, v := range pins {
		o.pins[f] = v
	}
	return o
}

// Pin forces the feature to the given variant on subsequent evaluations.
func (o *StaticOverride) Pin(featureName, variantID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pins[featureName] = variantID
}

// Unpin removes a pin.
func (o *StaticOverride) Unpin(featureName string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.pins, featureName)
}

// TryOverride implements feature.OverrideProvider.
func (o *StaticOverride) TryOverride(ctx context.Context, f feature.Feature, tc targeting.Context) (*feature.Override, error) {
	o.mu.RLock()
	variantID, ok := o.pins[f.Name]
	o.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &feature.Override{VariantID: variantID, ProviderName: o.name}, nil
}

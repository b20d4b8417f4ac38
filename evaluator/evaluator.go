package evaluator

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/experiments/feature"
	"github.com/dmitrymomot/experiments/hashing"
	"github.com/dmitrymomot/experiments/targeting"
)

// Evaluator selects variants for caller contexts over the snapshots of its
// registered providers. It is immutable after New and safe for concurrent
// use.
type Evaluator struct {
	providers []feature.Provider
	overrides []feature.OverrideProvider
	spot      hashing.Function
	metadata  bool
	log       *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithProviders registers feature providers. Registration order is
// evaluation order and therefore configuration merge order.
func WithProviders(providers ...feature.Provider) Option {
	return func(e *Evaluator) { e.providers = append(e.providers, providers...) }
}

// WithOverrides registers override providers, asked in registration order.
func WithOverrides(overrides ...feature.OverrideProvider) Option {
	return func(e *Evaluator) { e.overrides = append(e.overrides, overrides...) }
}

// WithHash replaces the allocation hash function. The default is
// hashing.SpotXX.
func WithHash(fn hashing.Function) Option {
	return func(e *Evaluator) {
		if fn != nil {
			e.spot = fn
		}
	}
}

// WithoutMetadata skips building the per-call audit trail. Selection and
// merge behavior are unaffected.
func WithoutMetadata() Option {
	return func(e *Evaluator) { e.metadata = false }
}

// WithLogger sets the logger used for provider fetch diagnostics. The
// default discards everything; the selection hot path never logs.
func WithLogger(log *slog.Logger) Option {
	return func(e *Evaluator) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		spot:     hashing.SpotXX,
		metadata: true,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate resolves the variants applicable to the given context. The ctx
// cancellation is honored while provider snapshots are fetched; once data
// is available, selection and merge run to completion. A provider fetch
// failure skips that provider's features and is the only effect it has.
func (e *Evaluator) Evaluate(ctx context.Context, tc targeting.Context) (*Result, error) {
	r := targeting.NewReceiver()
	tc.Populate(r)

	snapshots := make([][]feature.Feature, len(e.providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range e.providers {
		i, p := i, p
		g.Go(func() error {
			fs, err := p.GetFeatures(gctx)
			if err != nil {
				e.log.Warn("feature provider fetch failed",
					slog.String("provider", p.Name()),
					slog.Any("error", err))
				return nil
			}
			snapshots[i] = fs
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	for i, p := range e.providers {
		for _, f := range snapshots[i] {
			if !f.Enabled || !e.satisfied(r, f.Filters) {
				continue
			}

			selected, meta := e.selectVariant(ctx, r, tc, f, p.Name())
			if selected == nil {
				continue
			}

			res.Variants = append(res.Variants, *selected)
			res.configs = append(res.configs, selected.Settings)
			if e.metadata {
				res.Metadata = append(res.Metadata, meta)
			}
		}
	}
	return res, nil
}

func (e *Evaluator) selectVariant(ctx context.Context, r *targeting.Receiver, tc targeting.Context, f feature.Feature, providerName string) (*feature.Variant, feature.Metadata) {
	if f.ProviderName != "" {
		providerName = f.ProviderName
	}

	if ov := e.firstOverride(ctx, tc, f); ov != nil {
		if v := f.Variant(ov.VariantID); v != nil {
			return v, feature.Metadata{
				FeatureName:          f.Name,
				ProviderName:         providerName,
				VariantID:            v.ID,
				IsOverridden:         true,
				OverrideProviderName: ov.ProviderName,
			}
		}
		// Unknown variant id: the override is ignored and normal
		// allocation proceeds.
	}

	spot := e.spot(f.Salt, r.IdentifierFor(f.AllocationUnit))

	candidates := make([]*feature.Variant, 0, len(f.Variants))
	for i := range f.Variants {
		v := &f.Variants[i]
		if v.Allocation.Contains(spot) && e.satisfied(r, v.Filters) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil, feature.Metadata{}
	}

	// Priority ascending with nil last, then filter specificity descending.
	// The stable sort keeps definition order for full ties.
	slices.SortStableFunc(candidates, func(a, b *feature.Variant) int {
		switch {
		case a.Priority != nil && b.Priority != nil && *a.Priority != *b.Priority:
			return *a.Priority - *b.Priority
		case a.Priority != nil && b.Priority == nil:
			return -1
		case a.Priority == nil && b.Priority != nil:
			return 1
		}
		return len(b.Filters) - len(a.Filters)
	})

	v := candidates[0]
	return v, feature.Metadata{
		FeatureName:  f.Name,
		ProviderName: providerName,
		VariantID:    v.ID,
	}
}

func (e *Evaluator) firstOverride(ctx context.Context, tc targeting.Context, f feature.Feature) *feature.Override {
	for _, op := range e.overrides {
		ov, err := op.TryOverride(ctx, f, tc)
		if err != nil {
			e.log.Warn("override provider failed",
				slog.String("feature", f.Name),
				slog.Any("error", err))
			continue
		}
		if ov != nil {
			return ov
		}
	}
	return nil
}

func (e *Evaluator) satisfied(r *targeting.Receiver, filters []feature.PropertyFilter) bool {
	for _, pf := range filters {
		if !pf.Condition.Match(r.Get(pf.Property)) {
			return false
		}
	}
	return true
}

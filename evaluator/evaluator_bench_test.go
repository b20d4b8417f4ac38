package evaluator_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/experiments/condition"
	"github.com/dmitrymomot/experiments/evaluator"
	"github.com/dmitrymomot/experiments/feature"
	"github.com/dmitrymomot/experiments/targeting"
)

func BenchmarkEvaluate(b *testing.B) {
	buildFeatures := func(n int) []feature.Feature {
		fs := make([]feature.Feature, n)
		for i := 0; i < n; i++ {
			fs[i] = feature.MustNew(fmt.Sprintf("feature-%d", i),
				feature.WithSalt(fmt.Sprintf("salt-%d", i)),
				feature.WithFilter("Market", condition.StringEquals("US")),
				feature.WithVariant("a",
					feature.VariantPercentage(50),
					feature.VariantSettings(map[string]any{"Size": i}),
				),
				feature.WithVariant("b",
					feature.VariantFilter("UserId", condition.Exists(true)),
					feature.VariantSettings(map[string]any{"Size": -i}),
				),
			)
		}
		return fs
	}

	ctx := context.Background()
	tc := targeting.Fields{
		{Name: "UserId", Value: targeting.String("user-123")},
		{Name: "Market", Value: targeting.String("US")},
	}

	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("Features%d", n), func(b *testing.B) {
			eval := evaluator.New(
				evaluator.WithProviders(benchProvider{features: buildFeatures(n)}),
			)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = eval.Evaluate(ctx, tc)
			}
		})
	}

	b.Run("WithoutMetadata", func(b *testing.B) {
		eval := evaluator.New(
			evaluator.WithProviders(benchProvider{features: buildFeatures(10)}),
			evaluator.WithoutMetadata(),
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = eval.Evaluate(ctx, tc)
		}
	})
}

type benchProvider struct {
	features []feature.Feature
}

func (p benchProvider) Name() string { return "bench" }

func (p benchProvider) GetFeatures(ctx context.Context) ([]feature.Feature, error) {
	return p.features, nil
}

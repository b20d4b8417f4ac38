package provider_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/experiments/feature"
	"github.com/dmitrymomot/experiments/provider"
	"github.com/dmitrymomot/experiments/targeting"
)

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("ServesSnapshot", func(t *testing.T) {
		t.Parallel()
		p := provider.NewStatic("static",
			feature.MustNew("a", feature.WithVariant("on")),
			feature.MustNew("b", feature.WithVariant("on")),
		)

		features, err := p.GetFeatures(ctx)
		require.NoError(t, err)
		require.Len(t, features, 2)
		assert.Equal(t, "static", features[0].ProviderName, "provider stamps its name")
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		p := provider.NewStatic("static")
		features, err := p.GetFeatures(ctx)
		require.NoError(t, err)
		assert.Empty(t, features)
	})

	t.Run("ReplaceSwapsAtomically", func(t *testing.T) {
		t.Parallel()
		p := provider.NewStatic("static", feature.MustNew("old", feature.WithVariant("on")))

		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for it := 0; it < 100; it++ {
					features, err := p.GetFeatures(ctx)
					assert.NoError(t, err)
					// Either snapshot in full, never a partial one.
					assert.Len(t, features, 1)
				}
			}()
		}
		for it := 0; it < 100; it++ {
			p.Replace([]feature.Feature{feature.MustNew("new", feature.WithVariant("on"))})
		}
		wg.Wait()

		features, err := p.GetFeatures(ctx)
		require.NoError(t, err)
		require.Len(t, features, 1)
		assert.Equal(t, "new", features[0].Name)
	})

	t.Run("KeepsExplicitProviderName", func(t *testing.T) {
		t.Parallel()
		f := feature.MustNew("a", feature.WithVariant("on"))
		f.ProviderName = "upstream"
		p := provider.NewStatic("static", f)

		features, err := p.GetFeatures(ctx)
		require.NoError(t, err)
		assert.Equal(t, "upstream", features[0].ProviderName)
	})
}

func TestStaticOverride(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := feature.MustNew("checkout", feature.WithVariant("on"), feature.WithVariant("off"))
	tc := targeting.Map{"UserId": targeting.String("user-42")}

	t.Run("PinnedFeature", func(t *testing.T) {
		t.Parallel()
		o := provider.NewStaticOverride("ops", map[string]string{"checkout": "off"})
		ov, err := o.TryOverride(ctx, f, tc)
		require.NoError(t, err)
		require.NotNil(t, ov)
		assert.Equal(t, "off", ov.VariantID)
		assert.Equal(t, "ops", ov.ProviderName)
	})

	t.Run("UnpinnedFeature", func(t *testing.T) {
		t.Parallel()
		o := provider.NewStaticOverride("ops", nil)
		ov, err := o.TryOverride(ctx, f, tc)
		require.NoError(t, err)
		assert.Nil(t, ov)
	})

	t.Run("PinUnpin", func(t *testing.T) {
		t.Parallel()
		o := provider.NewStaticOverride("ops", nil)
		o.Pin("checkout", "on")

		ov, err := o.TryOverride(ctx, f, tc)
		require.NoError(t, err)
		require.NotNil(t, ov)
		assert.Equal(t, "on", ov.VariantID)

		o.Unpin("checkout")
		ov, err = o.TryOverride(ctx, f, tc)
		require.NoError(t, err)
		assert.Nil(t, ov)
	})
}

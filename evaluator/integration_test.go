package evaluator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/experiments/evaluator"
	"github.com/dmitrymomot/experiments/provider"
	"github.com/dmitrymomot/experiments/targeting"
)

const definitionDoc = `
filtered:
  salt: abcdef
  filters:
    Market: ["U*", "PL", "^C.+$"]
    AgeGroup: ["1", "[2;3)"]
  variants:
    default:
      allocation: 100%
      settings:
        Test:
          Size: 5
`

type testConfig struct {
	Size int
}

func TestFileProviderEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definitionDoc), 0o644))

	e := evaluator.New(evaluator.WithProviders(provider.NewFile("config", path)))

	t.Run("FiltersSatisfied", func(t *testing.T) {
		t.Parallel()
		res, err := e.Evaluate(ctx, targeting.Map{
			"Identifier": targeting.String("user-1"),
			"Market":     targeting.String("US"),
			"AgeGroup":   targeting.Number(1),
		})
		require.NoError(t, err)
		require.Len(t, res.Variants, 1)
		assert.Equal(t, "default", res.Variants[0].ID)

		require.Len(t, res.Metadata, 1)
		assert.Equal(t, "filtered", res.Metadata[0].FeatureName)
		assert.Equal(t, "config", res.Metadata[0].ProviderName)
		assert.False(t, res.Metadata[0].IsOverridden)

		var cfg testConfig
		require.NoError(t, res.Bind("Test", &cfg))
		assert.Equal(t, 5, cfg.Size)
	})

	t.Run("AgeGroupInRange", func(t *testing.T) {
		t.Parallel()
		res, err := e.Evaluate(ctx, targeting.Map{
			"Identifier": targeting.String("user-1"),
			"Market":     targeting.String("PL"),
			"AgeGroup":   targeting.Number(2.5),
		})
		require.NoError(t, err)
		require.Len(t, res.Variants, 1)
	})

	t.Run("MarketFilterFails", func(t *testing.T) {
		t.Parallel()
		res, err := e.Evaluate(ctx, targeting.Map{
			"Identifier": targeting.String("user-1"),
			"Market":     targeting.String("DE"),
			"AgeGroup":   targeting.Number(1),
		})
		require.NoError(t, err)
		assert.Empty(t, res.Variants)

		var cfg testConfig
		require.NoError(t, res.Bind("Test", &cfg))
		assert.Equal(t, 0, cfg.Size, "unconfigured default survives")
	})

	t.Run("RegexAlternative", func(t *testing.T) {
		t.Parallel()
		res, err := e.Evaluate(ctx, targeting.Map{
			"Identifier": targeting.String("user-1"),
			"Market":     targeting.String("CH"),
			"AgeGroup":   targeting.Number(1),
		})
		require.NoError(t, err)
		require.Len(t, res.Variants, 1, "anchored regex alternative matches")
	})

	t.Run("AgeGroupOutOfRange", func(t *testing.T) {
		t.Parallel()
		res, err := e.Evaluate(ctx, targeting.Map{
			"Identifier": targeting.String("user-1"),
			"Market":     targeting.String("US"),
			"AgeGroup":   targeting.Number(3),
		})
		require.NoError(t, err)
		assert.Empty(t, res.Variants, "range upper bound is exclusive")
	})
}

package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/experiments/settings"
)

type testOptions struct {
	Size    int
	Label   string
	Nested  nestedOptions
	Tags    []string
	Enabled bool
}

type nestedOptions struct {
	Depth int
}

func TestSection(t *testing.T) {
	t.Parallel()

	merged := map[string]any{
		"Test": map[string]any{
			"Inner": map[string]any{"Size": 5},
		},
	}

	t.Run("ColonDelimited", func(t *testing.T) {
		t.Parallel()
		section, ok := settings.Section(merged, "Test:Inner")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"Size": 5}, section)
	})

	t.Run("DotDelimited", func(t *testing.T) {
		t.Parallel()
		section, ok := settings.Section(merged, "Test.Inner")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"Size": 5}, section)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		t.Parallel()
		_, ok := settings.Section(merged, "test:INNER")
		assert.True(t, ok)
	})

	t.Run("EmptyPathIsRoot", func(t *testing.T) {
		t.Parallel()
		section, ok := settings.Section(merged, "")
		require.True(t, ok)
		assert.Equal(t, merged, section)
	})

	t.Run("Unresolvable", func(t *testing.T) {
		t.Parallel()
		_, ok := settings.Section(merged, "Test:Missing")
		assert.False(t, ok)
		_, ok = settings.Section(merged, "Test:Inner:Size:TooDeep")
		assert.False(t, ok)
	})
}

func TestBind(t *testing.T) {
	t.Parallel()

	merged := map[string]any{
		"Test": map[string]any{
			"Size":    5,
			"Label":   "big",
			"Enabled": true,
			"Nested":  map[string]any{"Depth": 3},
			"Tags":    []any{"a", "b"},
		},
	}

	t.Run("BindsSection", func(t *testing.T) {
		t.Parallel()
		var opts testOptions
		require.NoError(t, settings.Bind(merged, "Test", &opts))
		assert.Equal(t, 5, opts.Size)
		assert.Equal(t, "big", opts.Label)
		assert.True(t, opts.Enabled)
		assert.Equal(t, 3, opts.Nested.Depth)
		assert.Equal(t, []string{"a", "b"}, opts.Tags)
	})

	t.Run("UnresolvablePathLeavesDefaults", func(t *testing.T) {
		t.Parallel()
		opts := testOptions{Size: 42}
		require.NoError(t, settings.Bind(merged, "Missing:Section", &opts))
		assert.Equal(t, 42, opts.Size)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		t.Parallel()
		var opts testOptions
		err := settings.Bind(map[string]any{"Test": map[string]any{"Size": "not-a-number"}}, "Test", &opts)
		assert.ErrorIs(t, err, settings.ErrBind)
	})

	t.Run("NilDestination", func(t *testing.T) {
		t.Parallel()
		err := settings.Bind(merged, "Test", nil)
		assert.ErrorIs(t, err, settings.ErrNilDestination)
	})
}

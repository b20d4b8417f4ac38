package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/experiments/settings"
)

func TestMergeObjects(t *testing.T) {
	t.Parallel()

	merged := settings.Merge(
		map[string]any{"A": map[string]any{"X": 1}},
		map[string]any{"A": map[string]any{"Y": 2}},
	)

	assert.Equal(t, map[string]any{"A": map[string]any{"X": 1, "Y": 2}}, merged)
}

func TestMergeArrays(t *testing.T) {
	t.Parallel()

	merged := settings.Merge(
		map[string]any{"T": []any{1}},
		map[string]any{"T": []any{2, 3}},
	)

	assert.Equal(t, map[string]any{"T": []any{1, 2, 3}}, merged)
}

func TestMergeArraysNoDeduplication(t *testing.T) {
	t.Parallel()

	merged := settings.Merge(
		map[string]any{"T": []any{1, 2}},
		map[string]any{"T": []any{2}},
	)

	assert.Equal(t, map[string]any{"T": []any{1, 2, 2}}, merged)
}

func TestMergeScalarsLastWins(t *testing.T) {
	t.Parallel()

	merged := settings.Merge(
		map[string]any{"K": "a"},
		map[string]any{"K": "b"},
	)

	assert.Equal(t, map[string]any{"K": "b"}, merged)
}

func TestMergeTypeMismatchReplaces(t *testing.T) {
	t.Parallel()

	t.Run("ObjectThenScalar", func(t *testing.T) {
		t.Parallel()
		merged := settings.Merge(
			map[string]any{"K": map[string]any{"X": 1}},
			map[string]any{"K": "flat"},
		)
		assert.Equal(t, map[string]any{"K": "flat"}, merged)
	})

	t.Run("ArrayThenObject", func(t *testing.T) {
		t.Parallel()
		merged := settings.Merge(
			map[string]any{"K": []any{1, 2}},
			map[string]any{"K": map[string]any{"X": 1}},
		)
		assert.Equal(t, map[string]any{"K": map[string]any{"X": 1}}, merged)
	})
}

func TestMergeCaseInsensitiveKeys(t *testing.T) {
	t.Parallel()

	merged := settings.Merge(
		map[string]any{"Size": 1, "Nested": map[string]any{"Depth": 1}},
		map[string]any{"size": 2, "nested": map[string]any{"depth": 2, "Extra": true}},
	)

	require.IsType(t, map[string]any{}, merged)
	m := merged.(map[string]any)
	assert.Equal(t, 2, m["Size"], "first-seen casing is kept, later value wins")
	assert.Equal(t, map[string]any{"Depth": 2, "Extra": true}, m["Nested"])
}

func TestMergeCaseCollidingKeysInOneInput(t *testing.T) {
	t.Parallel()

	// One input carrying both casings of a key folds the same way every
	// run: keys are visited in sorted order, so "A" is seen before "a"
	// and keeps its casing while the later value wins.
	first := settings.Merge(
		map[string]any{"Size": 1},
		map[string]any{"a": "lower", "A": "upper", "size": 2},
	)
	for it := 0; it < 5; it++ {
		assert.Equal(t, first, settings.Merge(
			map[string]any{"Size": 1},
			map[string]any{"a": "lower", "A": "upper", "size": 2},
		))
	}

	require.IsType(t, map[string]any{}, first)
	m := first.(map[string]any)
	assert.Equal(t, "lower", m["A"], `"A" sorts first and keeps its casing; "a" folds into it`)
	assert.NotContains(t, m, "a")
	assert.Equal(t, 2, m["Size"])
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	first := map[string]any{"A": map[string]any{"X": 1}, "T": []any{1}}
	second := map[string]any{"A": map[string]any{"Y": 2}, "T": []any{2}}

	merged := settings.Merge(first, second)
	merged.(map[string]any)["A"].(map[string]any)["X"] = 99
	merged.(map[string]any)["T"].([]any)[0] = 99

	assert.Equal(t, map[string]any{"A": map[string]any{"X": 1}, "T": []any{1}}, first)
	assert.Equal(t, map[string]any{"A": map[string]any{"Y": 2}, "T": []any{2}}, second)
}

func TestMergeDeterminism(t *testing.T) {
	t.Parallel()

	configs := []any{
		map[string]any{"A": map[string]any{"X": 1}, "T": []any{1}},
		map[string]any{"A": map[string]any{"Y": 2}, "T": []any{2, 3}, "K": "b"},
	}

	first := settings.Merge(configs...)
	for it := 0; it < 5; it++ {
		assert.Equal(t, first, settings.Merge(configs...))
	}
}

func TestMergeEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, settings.Merge())
	assert.Equal(t, map[string]any{"K": 1}, settings.Merge(nil, map[string]any{"K": 1}))
}

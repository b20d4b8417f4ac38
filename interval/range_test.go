package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/experiments/interval"
)

func TestRangeBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("ClosedOpen", func(t *testing.T) {
		t.Parallel()
		r := interval.ClosedOpen(0.0, 1.0)
		assert.True(t, r.Contains(0))
		assert.True(t, r.Contains(0.5))
		assert.False(t, r.Contains(1))
	})

	t.Run("OpenClosed", func(t *testing.T) {
		t.Parallel()
		r := interval.OpenClosed(0.0, 1.0)
		assert.False(t, r.Contains(0))
		assert.True(t, r.Contains(0.5))
		assert.True(t, r.Contains(1))
	})

	t.Run("Closed", func(t *testing.T) {
		t.Parallel()
		r := interval.Closed(2, 4)
		assert.True(t, r.Contains(2))
		assert.True(t, r.Contains(4))
		assert.False(t, r.Contains(5))
	})

	t.Run("Open", func(t *testing.T) {
		t.Parallel()
		r := interval.Open(2, 4)
		assert.False(t, r.Contains(2))
		assert.True(t, r.Contains(3))
		assert.False(t, r.Contains(4))
	})

	t.Run("OutsideBounds", func(t *testing.T) {
		t.Parallel()
		r := interval.Closed(0.0, 1.0)
		assert.False(t, r.Contains(-0.1))
		assert.False(t, r.Contains(1.1))
	})

	t.Run("StringRange", func(t *testing.T) {
		t.Parallel()
		r := interval.ClosedOpen("a", "c")
		assert.True(t, r.Contains("a"))
		assert.True(t, r.Contains("b"))
		assert.False(t, r.Contains("c"))
	})
}

func TestRangeIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, interval.Open(1.0, 1.0).IsEmpty())
	assert.True(t, interval.ClosedOpen(1.0, 1.0).IsEmpty())
	assert.False(t, interval.Closed(1.0, 1.0).IsEmpty())
	assert.True(t, interval.Closed(2.0, 1.0).IsEmpty())
	assert.False(t, interval.Open(0.0, 1.0).IsEmpty())
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	t.Run("HalfOpenUpperBound", func(t *testing.T) {
		t.Parallel()
		a := interval.Percentage(25)
		assert.True(t, a.Contains(0))
		assert.True(t, a.Contains(0.2499))
		assert.False(t, a.Contains(0.25))
	})

	t.Run("Zero", func(t *testing.T) {
		t.Parallel()
		a := interval.Percentage(0)
		assert.False(t, a.Contains(0))
		assert.True(t, a.IsEmpty())
	})

	t.Run("Hundred", func(t *testing.T) {
		t.Parallel()
		a := interval.Percentage(100)
		assert.True(t, a.Contains(0))
		assert.True(t, a.Contains(0.999999))
		assert.False(t, a.Contains(1))
	})

	t.Run("Clamped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, interval.Percentage(100), interval.Percentage(150))
		assert.Equal(t, interval.Percentage(0), interval.Percentage(-5))
	})
}

func TestFull(t *testing.T) {
	t.Parallel()

	a := interval.Full()
	assert.True(t, a.Contains(0))
	assert.True(t, a.Contains(0.5))
	assert.False(t, a.Contains(1))
}

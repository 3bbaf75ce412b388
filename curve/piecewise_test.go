package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPiecewiseValidation(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty points", func(t *testing.T) {
		_, err := NewPiecewise(nil, nil, nil)
		require.ErrorIs(t, err, ErrNoPoints)
	})

	t.Run("rejects length mismatch", func(t *testing.T) {
		_, err := NewPiecewise(nil, []float64{1, 2}, []float64{0.97})
		require.Error(t, err)
	})

	t.Run("rejects unordered times", func(t *testing.T) {
		_, err := NewPiecewise(nil, []float64{2, 1}, []float64{0.93, 0.97})
		require.ErrorIs(t, err, ErrUnorderedTimes)

		_, err = NewPiecewise(nil, []float64{1, 1}, []float64{0.97, 0.97})
		require.ErrorIs(t, err, ErrUnorderedTimes)

		_, err = NewPiecewise(nil, []float64{0, 1}, []float64{1, 0.97})
		require.ErrorIs(t, err, ErrUnorderedTimes)
	})

	t.Run("rejects non-positive discount factors", func(t *testing.T) {
		_, err := NewPiecewise(nil, []float64{1, 2}, []float64{0.97, -0.1})
		require.ErrorIs(t, err, ErrNonPositiveDiscount)
	})
}

func TestPiecewiseInterpolation(t *testing.T) {
	t.Parallel()

	times := []float64{1, 2, 5}
	dfs := []float64{0.97, 0.93, 0.80}
	p, err := NewPiecewise(CubicTemplate, times, dfs)
	require.NoError(t, err)

	t.Run("hits the knots", func(t *testing.T) {
		for i, tm := range times {
			assert.InDelta(t, dfs[i], p.Discount(tm), 1e-12, "t=%v", tm)
		}
	})

	t.Run("anchored at unity today", func(t *testing.T) {
		assert.InDelta(t, 1.0, p.Discount(0), 1e-12)
	})

	t.Run("monotone between knots", func(t *testing.T) {
		mid := p.Discount(1.5)
		assert.Less(t, mid, 0.97)
		assert.Greater(t, mid, 0.93)
	})

	t.Run("holds boundary value beyond the last knot", func(t *testing.T) {
		assert.InDelta(t, 0.80, p.Discount(9), 1e-12)
	})

	t.Run("zero rate consistent with discount", func(t *testing.T) {
		for _, tm := range []float64{0.5, 1, 3.3} {
			z := p.Zero(tm)
			assert.InDelta(t, p.Discount(tm), math.Exp(-z.Value()*tm), 1e-12, "t=%v", tm)
		}
	})
}

func TestPiecewiseLinearTemplate(t *testing.T) {
	t.Parallel()

	p, err := NewPiecewise(LinearTemplate, []float64{1, 2}, []float64{0.97, 0.93})
	require.NoError(t, err)
	assert.InDelta(t, 0.95, p.Discount(1.5), 1e-12)
	assert.InDelta(t, 0.985, p.Discount(0.5), 1e-12)
}

func TestPiecewiseSinglePoint(t *testing.T) {
	t.Parallel()

	p, err := NewPiecewise(nil, []float64{5}, []float64{0.86})
	require.NoError(t, err)
	assert.InDelta(t, 0.86, p.Discount(5), 1e-12)
	assert.InDelta(t, 1.0, p.Discount(0), 1e-12)

	mid := p.Discount(2.5)
	assert.Greater(t, mid, 0.86)
	assert.Less(t, mid, 1.0)
}

func TestPiecewiseSnapshotIsolation(t *testing.T) {
	t.Parallel()

	times := []float64{1, 2}
	dfs := []float64{0.97, 0.93}
	p, err := NewPiecewise(nil, times, dfs)
	require.NoError(t, err)

	// Mutating the inputs or the accessor results must not reach the curve.
	times[0] = 99
	dfs[0] = 99
	p.Times()[1] = 99
	p.DiscountFactors()[1] = 99

	assert.Equal(t, []float64{1, 2}, p.Times())
	assert.Equal(t, []float64{0.97, 0.93}, p.DiscountFactors())
	assert.InDelta(t, 0.97, p.Discount(1), 1e-12)
}

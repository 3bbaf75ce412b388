package bonds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/rate"
)

func TestYieldToMaturity(t *testing.T) {
	t.Parallel()

	b, err := NewFixedCoupon(5, 100, 0.04, 1)
	require.NoError(t, err)

	t.Run("recovers the discounting yield", func(t *testing.T) {
		price := b.PresentValue(curve.NewConstant(rate.Annual(0.035)))
		y, err := YieldToMaturity(b, price)
		require.NoError(t, err)
		assert.InDelta(t, 0.035, y.Value(), 1e-9)
		assert.Equal(t, rate.Annual(0.035).Compounding(), y.Compounding())
	})

	t.Run("par bond yields its coupon", func(t *testing.T) {
		y, err := YieldToMaturity(b, 100)
		require.NoError(t, err)
		assert.InDelta(t, 0.04, y.Value(), 1e-9)
	})

	t.Run("discount price raises the yield", func(t *testing.T) {
		y, err := YieldToMaturity(b, 95)
		require.NoError(t, err)
		assert.Greater(t, y.Value(), 0.04)
	})
}

func TestParCouponRate(t *testing.T) {
	t.Parallel()

	t.Run("validates inputs", func(t *testing.T) {
		_, err := ParCouponRate(curve.Flat(0.03), 0, 2)
		require.Error(t, err)
		_, err = ParCouponRate(curve.Flat(0.03), 5, 0)
		require.Error(t, err)
	})

	t.Run("annual par rate on an annual-effective flat curve", func(t *testing.T) {
		ts := curve.NewConstant(rate.Annual(0.04))
		par, err := ParCouponRate(ts, 5, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.04, par, 1e-12)
	})

	t.Run("semiannual par rate on a continuous flat curve", func(t *testing.T) {
		ts := curve.Flat(0.03)
		par, err := ParCouponRate(ts, 10, 2)
		require.NoError(t, err)

		semi, err := rate.Periodic(2)
		require.NoError(t, err)
		want, err := rate.New(0.03, rate.Continuous).Convert(semi)
		require.NoError(t, err)
		assert.InDelta(t, want.Value(), par, 1e-12)
	})

	t.Run("par coupon reprices to face", func(t *testing.T) {
		ref, err := curve.NewNelsonSiegel(2.0, 0.05, -0.02, 0.01)
		require.NoError(t, err)
		par, err := ParCouponRate(ref, 7, 2)
		require.NoError(t, err)
		b, err := NewFixedCoupon(7, 100, par, 2)
		require.NoError(t, err)
		assert.InDelta(t, 100, b.PresentValue(ref), 1e-9)
	})
}

package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/curvefit/curve"
)

func TestSyntheticZeroCouponQuotes(t *testing.T) {
	t.Parallel()

	ref := curve.Flat(0.03)

	t.Run("exact without noise", func(t *testing.T) {
		quotes, err := Synthetic{Curve: ref}.ZeroCouponQuotes([]float64{5, 1, 10})
		require.NoError(t, err)
		require.Len(t, quotes, 3)

		// Sorted ascending regardless of input order.
		assert.Equal(t, 1.0, quotes[0].Maturity())
		assert.Equal(t, 10.0, quotes[2].Maturity())
		for _, q := range quotes {
			assert.Equal(t, q.Instrument.PresentValue(ref), q.Price, "t=%v", q.Maturity())
		}
	})

	t.Run("noise is reproducible per seed", func(t *testing.T) {
		gen := Synthetic{Curve: ref, Noise: 0.05, Seed: 7}
		first, err := gen.ZeroCouponQuotes([]float64{1, 5, 10})
		require.NoError(t, err)
		second, err := gen.ZeroCouponQuotes([]float64{1, 5, 10})
		require.NoError(t, err)

		perturbed := false
		for i := range first {
			assert.Equal(t, first[i].Price, second[i].Price)
			if first[i].Price != first[i].Instrument.PresentValue(ref) {
				perturbed = true
			}
		}
		assert.True(t, perturbed, "noise never moved a price")
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		_, err := Synthetic{}.ZeroCouponQuotes([]float64{1})
		require.Error(t, err)
		_, err = Synthetic{Curve: ref}.ZeroCouponQuotes([]float64{-1})
		require.Error(t, err)
	})
}

func TestSyntheticParCouponQuotes(t *testing.T) {
	t.Parallel()

	ref, err := curve.NewNelsonSiegel(2.0, 0.05, -0.02, 0.01)
	require.NoError(t, err)

	quotes, err := Synthetic{Curve: ref}.ParCouponQuotes([]float64{2, 5, 10}, 2)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	for _, q := range quotes {
		assert.Equal(t, 100.0, q.Price, "t=%v", q.Maturity())
		assert.InDelta(t, 100.0, q.Instrument.PresentValue(ref), 1e-9, "t=%v", q.Maturity())
	}
}

package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/curvefit/rate"
)

func TestNelsonSiegelConstruction(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive decay", func(t *testing.T) {
		for _, tau := range []float64{0, -1, math.NaN()} {
			_, err := NewNelsonSiegel(tau, 0.05, -0.02, 0.01)
			require.ErrorIs(t, err, ErrNonPositiveDecay, "tau1=%v", tau)
		}
	})

	t.Run("accepts positive decay", func(t *testing.T) {
		for _, tau := range []float64{1e-6, 0.5, 1, 10, 100} {
			_, err := NewNelsonSiegel(tau, 0.05, -0.02, 0.01)
			require.NoError(t, err, "tau1=%v", tau)
		}
	})

	t.Run("decay-only constructor is flat at unit level", func(t *testing.T) {
		m, err := NelsonSiegelWithDecay(3)
		require.NoError(t, err)
		assert.Equal(t, NelsonSiegel{Tau1: 3, Beta0: 1}, m)
	})
}

func TestNelsonSiegelZeroRate(t *testing.T) {
	t.Parallel()

	m, err := NewNelsonSiegel(2.0, 0.05, -0.02, 0.01)
	require.NoError(t, err)

	t.Run("known value", func(t *testing.T) {
		z := m.Zero(3)
		assert.Equal(t, rate.Continuous, z.Compounding())
		assert.InDelta(t, 0.0425895661, z.Value(), 1e-9)
	})

	t.Run("long end converges to level", func(t *testing.T) {
		assert.InDelta(t, m.Beta0, m.Zero(1e7).Value(), 1e-6)
	})

	t.Run("short end converges to level plus slope", func(t *testing.T) {
		assert.InDelta(t, m.Beta0+m.Beta1, m.Zero(0).Value(), 1e-6)
		assert.InDelta(t, m.Beta0+m.Beta1, m.Zero(1e-9).Value(), 1e-6)
	})
}

func TestNelsonSiegelDefaultIsFlatUnit(t *testing.T) {
	t.Parallel()

	m := DefaultNelsonSiegel()
	assert.Equal(t, 1.0, m.Discount(0))
	for _, horizon := range []float64{0.5, 1, 5, 20} {
		want := rate.Discount(rate.New(1.0, rate.Continuous), horizon)
		assert.InDelta(t, want, m.Discount(horizon), 1e-9, "t=%v", horizon)
	}
}

func TestNelsonSiegelDiscountMatchesZero(t *testing.T) {
	t.Parallel()

	m, err := NewNelsonSiegel(1.7, 0.04, -0.01, 0.02)
	require.NoError(t, err)
	for _, horizon := range []float64{0.25, 1, 4, 12} {
		want := math.Exp(-m.Zero(horizon).Value() * horizon)
		assert.InDelta(t, want, m.Discount(horizon), 1e-12, "t=%v", horizon)
	}
}

func TestNelsonSiegelSvenssonConstruction(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive decays", func(t *testing.T) {
		_, err := NewNelsonSiegelSvensson(-1, 1, 0, 0, 0, 0)
		require.ErrorIs(t, err, ErrNonPositiveDecay)

		_, err = NewNelsonSiegelSvensson(1, 0, 0, 0, 0, 0)
		require.ErrorIs(t, err, ErrNonPositiveDecay)
	})

	t.Run("accepts positive decays", func(t *testing.T) {
		_, err := NewNelsonSiegelSvensson(1, 4, 0.05, -0.02, 0.01, 0.005)
		require.NoError(t, err)
	})
}

func TestNelsonSiegelSvenssonZeroRate(t *testing.T) {
	t.Parallel()

	t.Run("default is flat at zero", func(t *testing.T) {
		m := DefaultNelsonSiegelSvensson()
		for _, horizon := range []float64{0, 1, 10} {
			assert.InDelta(t, 0, m.Zero(horizon).Value(), 1e-12, "t=%v", horizon)
			assert.InDelta(t, 1, m.Discount(horizon), 1e-12, "t=%v", horizon)
		}
	})

	t.Run("reduces to NelsonSiegel when beta3 is zero", func(t *testing.T) {
		ns, err := NewNelsonSiegel(2.0, 0.05, -0.02, 0.01)
		require.NoError(t, err)
		nss, err := NewNelsonSiegelSvensson(2.0, 7.0, 0.05, -0.02, 0.01, 0)
		require.NoError(t, err)
		for _, horizon := range []float64{0.5, 2, 9, 30} {
			assert.InDelta(t, ns.Zero(horizon).Value(), nss.Zero(horizon).Value(), 1e-12, "t=%v", horizon)
		}
	})

	t.Run("second hump moves the belly", func(t *testing.T) {
		flat, err := NewNelsonSiegelSvensson(2.0, 5.0, 0.05, 0, 0, 0)
		require.NoError(t, err)
		humped, err := NewNelsonSiegelSvensson(2.0, 5.0, 0.05, 0, 0, 0.01)
		require.NoError(t, err)
		assert.Greater(t, humped.Zero(5).Value(), flat.Zero(5).Value())
	})
}

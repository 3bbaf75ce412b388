package marketdata

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/fit"
	"github.com/meenmo/curvefit/instruments/bonds"
)

// Synthetic generates quotes off a reference curve, optionally perturbed by
// additive Gaussian price noise, for engine tests and demos.
type Synthetic struct {
	// Curve is the reference term structure the quotes are priced off.
	Curve curve.TermStructure
	// Noise is the standard deviation of the price perturbation. Zero keeps
	// quotes exact.
	Noise float64
	// Seed fixes the noise source. Zero behaves as 1.
	Seed uint64
}

// ZeroCouponQuotes prices face-100 zero-coupon bonds at the given
// maturities, sorted ascending.
func (s Synthetic) ZeroCouponQuotes(maturities []float64) ([]fit.Quote, error) {
	if s.Curve == nil {
		return nil, fmt.Errorf("ZeroCouponQuotes: nil reference curve")
	}
	noise := s.noiseSource()
	quotes := make([]fit.Quote, len(maturities))
	for i, m := range maturities {
		z, err := bonds.NewZeroCoupon(m, 100)
		if err != nil {
			return nil, fmt.Errorf("ZeroCouponQuotes: maturity %v: %w", m, err)
		}
		quotes[i] = fit.Quote{Instrument: z, Price: z.PresentValue(s.Curve) + noise()}
	}
	SortByMaturity(quotes)
	return quotes, nil
}

// ParCouponQuotes builds coupon bonds struck at the curve's par rate for each
// maturity, quoted at face, sorted ascending.
func (s Synthetic) ParCouponQuotes(maturities []float64, frequency float64) ([]fit.Quote, error) {
	if s.Curve == nil {
		return nil, fmt.Errorf("ParCouponQuotes: nil reference curve")
	}
	noise := s.noiseSource()
	quotes := make([]fit.Quote, len(maturities))
	for i, m := range maturities {
		par, err := bonds.ParCouponRate(s.Curve, m, frequency)
		if err != nil {
			return nil, fmt.Errorf("ParCouponQuotes: maturity %v: %w", m, err)
		}
		b, err := bonds.NewFixedCoupon(m, 100, par, frequency)
		if err != nil {
			return nil, fmt.Errorf("ParCouponQuotes: maturity %v: %w", m, err)
		}
		quotes[i] = fit.Quote{Instrument: b, Price: 100 + noise()}
	}
	SortByMaturity(quotes)
	return quotes, nil
}

// noiseSource returns a draw function: zero draws when Noise is unset.
func (s Synthetic) noiseSource() func() float64 {
	if s.Noise <= 0 {
		return func() float64 { return 0 }
	}
	seed := s.Seed
	if seed == 0 {
		seed = 1
	}
	dist := distuv.Normal{Mu: 0, Sigma: s.Noise, Src: rand.NewSource(seed)}
	return dist.Rand
}

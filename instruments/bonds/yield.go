package bonds

import (
	"fmt"
	"math"

	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/rate"
)

const (
	ytmTolerance = 1e-12
	ytmMaxIter   = 100
	ytmFloor     = -0.5
	ytmCeiling   = 1.0
)

// YieldToMaturity solves for the annual effective yield that reprices the
// bond to the given price.
//
// The solver is Newton-Raphson with analytic first derivative, clamped to
// [ytmFloor, ytmCeiling].
func YieldToMaturity(b FixedCoupon, price float64) (rate.Rate, error) {
	flows := b.Cashflows()

	y := clamp(b.couponRate, ytmFloor, ytmCeiling)
	for iter := 0; iter < ytmMaxIter; iter++ {
		pv, dPdy := priceAndDeriv(y, flows)
		f := pv - price

		if math.Abs(f) < ytmTolerance {
			return rate.Annual(y), nil
		}
		if math.Abs(dPdy) < 1e-15 {
			return rate.Rate{}, fmt.Errorf("YieldToMaturity: derivative too small at iter %d", iter)
		}

		y = clamp(y-f/dPdy, ytmFloor, ytmCeiling)
	}
	return rate.Rate{}, fmt.Errorf("YieldToMaturity: did not converge after %d iterations", ytmMaxIter)
}

// priceAndDeriv returns (price, dPrice/dy) under annual effective compounding:
//
//	price = Σ CF_k / (1+y)^t_k
//	dP/dy = Σ −t_k · CF_k / (1+y)^(t_k+1)
func priceAndDeriv(y float64, flows []Cashflow) (float64, float64) {
	var price, deriv float64
	for _, cf := range flows {
		disc := math.Pow(1.0+y, cf.Time)
		price += cf.Amount / disc
		deriv += -cf.Time * cf.Amount / math.Pow(1.0+y, cf.Time+1)
	}
	return price, deriv
}

// ParCouponRate returns the level coupon rate (annual, decimal) at which a
// bond paying frequency coupons per year and maturing at maturity prices to
// its face off the curve.
func ParCouponRate(ts curve.TermStructure, maturity, frequency float64) (float64, error) {
	if !(maturity > 0) {
		return 0, fmt.Errorf("ParCouponRate: maturity %v must be positive", maturity)
	}
	if !(frequency > 0) {
		return 0, fmt.Errorf("ParCouponRate: frequency %v must be positive", frequency)
	}
	annuity := 0.0
	for _, t := range couponTimes(maturity, frequency) {
		annuity += ts.Discount(t)
	}
	return frequency * (1 - ts.Discount(maturity)) / annuity, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

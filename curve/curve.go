// Package curve provides term-structure models: parametric zero-rate families
// (Nelson-Siegel, Nelson-Siegel-Svensson), flat curves, and piecewise discount
// curves interpolated over bootstrapped points.
package curve

import (
	"errors"
	"math"

	"github.com/meenmo/curvefit/rate"
)

var (
	// ErrNonPositiveDecay is returned when a parametric model is built with a
	// decay parameter (tau) that is not strictly positive.
	ErrNonPositiveDecay = errors.New("decay parameter must be strictly positive")
	// ErrUnorderedTimes is returned when piecewise curve times are not
	// strictly increasing positive maturities.
	ErrUnorderedTimes = errors.New("times must be strictly increasing and positive")
	// ErrNonPositiveDiscount is returned when a piecewise curve is built with
	// a discount factor that is not strictly positive.
	ErrNonPositiveDiscount = errors.New("discount factor must be strictly positive")
	// ErrNoPoints is returned when a piecewise curve is built without points.
	ErrNoPoints = errors.New("piecewise curve needs at least one point")
)

// zeroMaturityEpsilon perturbs a zero maturity before evaluating a zero rate.
// The spot-rate formulas are 0/0 at t=0 even though the limit is finite.
const zeroMaturityEpsilon = 1e-10

// TermStructure is the capability every curve model exposes: a zero rate and
// a discount factor at an arbitrary maturity in years.
type TermStructure interface {
	// Zero returns the zero (spot) rate at maturity t.
	Zero(t float64) rate.Rate
	// Discount returns the t-year discount factor.
	Discount(t float64) float64
}

// Accumulation returns the growth factor implied by ts at horizon t, the
// reciprocal of the discount factor.
func Accumulation(ts TermStructure, t float64) float64 {
	return 1 / ts.Discount(t)
}

// DiscountBetween returns the forward discount factor over [from, to].
func DiscountBetween(ts TermStructure, from, to float64) float64 {
	return ts.Discount(to) / ts.Discount(from)
}

// AccumulationBetween returns the forward growth factor over [from, to].
func AccumulationBetween(ts TermStructure, from, to float64) float64 {
	return ts.Discount(from) / ts.Discount(to)
}

// Forward returns the continuously compounded forward rate over [from, to].
// Equal endpoints degenerate to the zero rate at that maturity.
func Forward(ts TermStructure, from, to float64) rate.Rate {
	if from == to {
		return ts.Zero(from)
	}
	f := math.Log(ts.Discount(from)/ts.Discount(to)) / (to - from)
	return rate.New(f, rate.Continuous)
}

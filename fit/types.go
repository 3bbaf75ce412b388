package fit

import (
	"errors"

	"github.com/meenmo/curvefit/curve"
)

var (
	// ErrOptimizationFailed is returned when the optimizer cannot produce a
	// finite objective value within its budget and bounds.
	ErrOptimizationFailed = errors.New("optimizer found no finite objective value")
	// ErrInvalidBounds is returned when a tunable parameter's lower bound
	// exceeds its upper bound.
	ErrInvalidBounds = errors.New("parameter lower bound exceeds upper bound")
	// ErrNoQuotes is returned when a fit is requested with no quotes.
	ErrNoQuotes = errors.New("no quotes supplied")
	// ErrNoParams is returned when a loss fit has no tunable parameters.
	ErrNoParams = errors.New("no tunable parameters supplied")
	// ErrQuotesNotSorted is returned when bootstrap quotes are not strictly
	// increasing in maturity.
	ErrQuotesNotSorted = errors.New("quotes must be sorted by increasing maturity")
)

// Priceable is an instrument the engine can reprice against a candidate
// curve. PresentValue must be a pure function of its inputs: the optimizer
// revisits candidates and relies on repeatable prices.
type Priceable interface {
	// Maturity returns the time of the instrument's final cash flow in years.
	Maturity() float64
	// PresentValue prices the instrument off the given term structure.
	PresentValue(ts curve.TermStructure) float64
}

// Quote pairs an instrument with its observed market price, the calibration
// target of a fit.
type Quote struct {
	Instrument Priceable
	Price      float64
}

// Maturity returns the quoted instrument's maturity.
func (q Quote) Maturity() float64 {
	return q.Instrument.Maturity()
}

// LossFunc maps a pricing residual (model price minus market price) to the
// penalty a loss fit minimizes.
type LossFunc func(residual float64) float64

// SquaredError is the default loss.
func SquaredError(residual float64) float64 {
	return residual * residual
}

// AbsoluteError penalizes residuals linearly, damping outlier quotes.
func AbsoluteError(residual float64) float64 {
	if residual < 0 {
		return -residual
	}
	return residual
}

// Method selects a calibration strategy.
type Method interface {
	method()
}

// Loss calibrates the tunable parameters of a seed model by minimizing the
// summed per-quote loss of pricing residuals.
type Loss struct {
	// Fn is the per-quote loss. Nil means SquaredError.
	Fn LossFunc
}

// Bootstrap builds a piecewise discount curve sequentially, solving one new
// discount factor per quote while holding previously solved factors fixed.
// Quotes must be sorted by strictly increasing maturity.
type Bootstrap struct {
	// Template is the spline basis of the resulting curve. Nil means
	// curve.CubicTemplate.
	Template curve.Template
}

func (Loss) method()      {}
func (Bootstrap) method() {}

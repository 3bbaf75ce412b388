// Package swaps provides vanilla interest rate swap instruments priced off a
// single term structure. The floating leg is valued by the telescoping
// identity PV = notional * (1 - df(T)), so a swap struck at the par rate has
// zero value and works directly as a calibration target with a quoted price
// of zero.
package swaps

import (
	"fmt"
	"math"

	"github.com/meenmo/curvefit/curve"
)

// scheduleTolerance guards the payment-count rounding when a maturity sits a
// hair off an exact payment grid.
const scheduleTolerance = 1e-9

// InterestRateSwap is a fixed-for-floating swap from the fixed receiver's
// side. The fixed leg pays fixedRate on notional, frequency times per year,
// accruing over the actual period between payments; the schedule is generated
// backward from maturity, so an off-grid maturity produces a short first
// period.
type InterestRateSwap struct {
	maturity  float64
	fixedRate float64
	frequency float64
	notional  float64
}

// NewInterestRateSwap returns a receiver swap maturing at maturity years,
// paying fixedRate (annual, decimal) frequency times per year on notional.
func NewInterestRateSwap(maturity, fixedRate, frequency, notional float64) (InterestRateSwap, error) {
	if !(maturity > 0) {
		return InterestRateSwap{}, fmt.Errorf("NewInterestRateSwap: maturity %v must be positive", maturity)
	}
	if !(frequency > 0) {
		return InterestRateSwap{}, fmt.Errorf("NewInterestRateSwap: frequency %v must be positive", frequency)
	}
	if !(notional > 0) {
		return InterestRateSwap{}, fmt.Errorf("NewInterestRateSwap: notional %v must be positive", notional)
	}
	return InterestRateSwap{maturity: maturity, fixedRate: fixedRate, frequency: frequency, notional: notional}, nil
}

// Maturity returns the final payment time in years.
func (s InterestRateSwap) Maturity() float64 { return s.maturity }

// FixedRate returns the fixed leg rate as an annual decimal.
func (s InterestRateSwap) FixedRate() float64 { return s.fixedRate }

// Frequency returns fixed leg payments per year.
func (s InterestRateSwap) Frequency() float64 { return s.frequency }

// Notional returns the swap notional.
func (s InterestRateSwap) Notional() float64 { return s.notional }

// PresentValue returns the swap value to the fixed receiver:
//
//	PV = notional * (fixedRate * annuity(T) + df(T) - 1)
//
// which is zero when fixedRate equals the par rate off the same curve.
func (s InterestRateSwap) PresentValue(ts curve.TermStructure) float64 {
	ann := annuity(ts, s.maturity, s.frequency)
	return s.notional * (s.fixedRate*ann + ts.Discount(s.maturity) - 1.0)
}

// ParRate returns the fixed rate at which a swap maturing at maturity with
// the given payment frequency values to zero off the curve.
func ParRate(ts curve.TermStructure, maturity, frequency float64) (float64, error) {
	if !(maturity > 0) {
		return 0, fmt.Errorf("ParRate: maturity %v must be positive", maturity)
	}
	if !(frequency > 0) {
		return 0, fmt.Errorf("ParRate: frequency %v must be positive", frequency)
	}
	return (1.0 - ts.Discount(maturity)) / annuity(ts, maturity, frequency), nil
}

// annuity is the accrual-weighted sum of discount factors over the fixed leg
// payment grid.
func annuity(ts curve.TermStructure, maturity, frequency float64) float64 {
	sum := 0.0
	prev := 0.0
	for _, t := range paymentTimes(maturity, frequency) {
		sum += (t - prev) * ts.Discount(t)
		prev = t
	}
	return sum
}

// paymentTimes lays the fixed leg grid backward from maturity at 1/frequency
// steps, so the last payment lands exactly on maturity.
func paymentTimes(maturity, frequency float64) []float64 {
	n := int(math.Ceil(maturity*frequency - scheduleTolerance))
	if n < 1 {
		n = 1
	}
	times := make([]float64, n)
	for i := range times {
		times[i] = maturity - float64(n-1-i)/frequency
	}
	return times
}

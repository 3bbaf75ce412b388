// Package bonds provides fixed-income instruments priced off a term
// structure. Every instrument exposes its maturity and a present value
// against a candidate curve, which is what the fit engine needs to use it as
// a calibration target.
package bonds

import (
	"fmt"
	"math"

	"github.com/meenmo/curvefit/curve"
)

// scheduleTolerance guards the coupon-count rounding when a maturity sits a
// hair off an exact coupon grid.
const scheduleTolerance = 1e-9

// Cashflow is a single cash amount paid at a time in years from today.
type Cashflow struct {
	Time   float64
	Amount float64
}

// ZeroCoupon pays a single amount at maturity.
type ZeroCoupon struct {
	maturity float64
	amount   float64
}

// NewZeroCoupon returns the bond paying amount at maturity (in years).
func NewZeroCoupon(maturity, amount float64) (ZeroCoupon, error) {
	if !(maturity > 0) {
		return ZeroCoupon{}, fmt.Errorf("NewZeroCoupon: maturity %v must be positive", maturity)
	}
	return ZeroCoupon{maturity: maturity, amount: amount}, nil
}

// Maturity returns the payment time in years.
func (z ZeroCoupon) Maturity() float64 { return z.maturity }

// Amount returns the payment amount.
func (z ZeroCoupon) Amount() float64 { return z.amount }

// PresentValue discounts the single payment off the curve.
func (z ZeroCoupon) PresentValue(ts curve.TermStructure) float64 {
	return z.amount * ts.Discount(z.maturity)
}

// FixedCoupon is a level-coupon bond: periodic coupons plus face at maturity.
// The schedule is generated backward from maturity; a short first period
// still pays a full coupon.
type FixedCoupon struct {
	maturity   float64
	face       float64
	couponRate float64
	frequency  float64
}

// NewFixedCoupon returns a bond paying couponRate (annual, decimal) on face,
// frequency times per year, maturing at maturity years.
func NewFixedCoupon(maturity, face, couponRate, frequency float64) (FixedCoupon, error) {
	if !(maturity > 0) {
		return FixedCoupon{}, fmt.Errorf("NewFixedCoupon: maturity %v must be positive", maturity)
	}
	if !(face > 0) {
		return FixedCoupon{}, fmt.Errorf("NewFixedCoupon: face %v must be positive", face)
	}
	if !(frequency > 0) {
		return FixedCoupon{}, fmt.Errorf("NewFixedCoupon: frequency %v must be positive", frequency)
	}
	return FixedCoupon{maturity: maturity, face: face, couponRate: couponRate, frequency: frequency}, nil
}

// Maturity returns the final payment time in years.
func (b FixedCoupon) Maturity() float64 { return b.maturity }

// Face returns the principal repaid at maturity.
func (b FixedCoupon) Face() float64 { return b.face }

// CouponRate returns the annual coupon rate as a decimal.
func (b FixedCoupon) CouponRate() float64 { return b.couponRate }

// Frequency returns coupons per year.
func (b FixedCoupon) Frequency() float64 { return b.frequency }

// Cashflows returns the coupon and principal payments in time order.
func (b FixedCoupon) Cashflows() []Cashflow {
	times := couponTimes(b.maturity, b.frequency)
	coupon := b.face * b.couponRate / b.frequency
	flows := make([]Cashflow, len(times))
	for i, t := range times {
		flows[i] = Cashflow{Time: t, Amount: coupon}
	}
	flows[len(flows)-1].Amount += b.face
	return flows
}

// PresentValue discounts every payment off the curve.
func (b FixedCoupon) PresentValue(ts curve.TermStructure) float64 {
	pv := 0.0
	for _, cf := range b.Cashflows() {
		pv += cf.Amount * ts.Discount(cf.Time)
	}
	return pv
}

// Schedule is an instrument defined directly by its cash amounts, for flows
// that do not follow a level-coupon pattern.
type Schedule struct {
	flows []Cashflow
}

// NewSchedule validates that flow times are strictly increasing and positive
// and returns the instrument. The slice is copied.
func NewSchedule(flows []Cashflow) (Schedule, error) {
	if len(flows) == 0 {
		return Schedule{}, fmt.Errorf("NewSchedule: at least one cashflow is required")
	}
	prev := 0.0
	for i, cf := range flows {
		if !(cf.Time > prev) {
			return Schedule{}, fmt.Errorf("NewSchedule: cashflow %d at t=%v is not after t=%v", i, cf.Time, prev)
		}
		prev = cf.Time
	}
	out := make([]Cashflow, len(flows))
	copy(out, flows)
	return Schedule{flows: out}, nil
}

// Maturity returns the last cashflow's time.
func (s Schedule) Maturity() float64 {
	return s.flows[len(s.flows)-1].Time
}

// Cashflows returns a copy of the payment schedule.
func (s Schedule) Cashflows() []Cashflow {
	out := make([]Cashflow, len(s.flows))
	copy(out, s.flows)
	return out
}

// PresentValue discounts every payment off the curve.
func (s Schedule) PresentValue(ts curve.TermStructure) float64 {
	pv := 0.0
	for _, cf := range s.flows {
		pv += cf.Amount * ts.Discount(cf.Time)
	}
	return pv
}

// couponTimes lays the payment grid backward from maturity at 1/frequency
// steps, so the last payment lands exactly on maturity.
func couponTimes(maturity, frequency float64) []float64 {
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

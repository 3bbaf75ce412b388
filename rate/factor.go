package rate

import "math"

// Accumulation returns the growth factor of one unit invested at r for t
// years: exp(c*t) under continuous compounding, (1+p/m)^(m*t) under periodic.
// Negative t discounts instead of accruing.
func Accumulation(r Rate, t float64) float64 {
	if r.conv.continuous {
		return math.Exp(r.value * t)
	}
	m := r.conv.Frequency()
	return math.Pow(1+r.value/m, m*t)
}

// Discount returns the present value of one unit due in t years, the
// reciprocal of Accumulation.
func Discount(r Rate, t float64) float64 {
	return 1 / Accumulation(r, t)
}

// AccumulationBetween returns the growth factor over the interval [from, to].
// It depends only on the interval length, so a negative interval inverts the
// factor.
func AccumulationBetween(r Rate, from, to float64) float64 {
	return Accumulation(r, to-from)
}

// DiscountBetween returns the discount factor over the interval [from, to].
func DiscountBetween(r Rate, from, to float64) float64 {
	return Discount(r, to-from)
}

package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/meenmo/curvefit/rate"
)

// Template selects the spline basis a Piecewise curve interpolates discount
// factors with. Each call returns a fresh, unfitted predictor.
type Template func() interp.FittablePredictor

var (
	// CubicTemplate interpolates discount factors with a monotone piecewise
	// cubic (Fritsch-Butland), the default bootstrap basis.
	CubicTemplate Template = func() interp.FittablePredictor { return &interp.FritschButland{} }
	// LinearTemplate interpolates discount factors linearly.
	LinearTemplate Template = func() interp.FittablePredictor { return &interp.PiecewiseLinear{} }
)

// Piecewise is a discount curve interpolated through an ordered sequence of
// (maturity, discount factor) points, anchored at a unit factor today.
// Outside the fitted range the spline holds its boundary value. The curve is
// a frozen snapshot: the point slices are copied in and never mutated.
type Piecewise struct {
	times []float64
	dfs   []float64
	pred  interp.Predictor
}

// NewPiecewise builds a discount curve through the given points using the
// template's spline basis (CubicTemplate when nil). Times must be strictly
// increasing and positive, discount factors strictly positive, and the two
// slices of equal nonzero length.
func NewPiecewise(tmpl Template, times, dfs []float64) (*Piecewise, error) {
	if tmpl == nil {
		tmpl = CubicTemplate
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("NewPiecewise: %w", ErrNoPoints)
	}
	if len(times) != len(dfs) {
		return nil, fmt.Errorf("NewPiecewise: %d times vs %d discount factors", len(times), len(dfs))
	}
	prev := 0.0
	for i, t := range times {
		if !(t > prev) {
			return nil, fmt.Errorf("NewPiecewise: time %v at index %d: %w", t, i, ErrUnorderedTimes)
		}
		if !(dfs[i] > 0) {
			return nil, fmt.Errorf("NewPiecewise: factor %v at index %d: %w", dfs[i], i, ErrNonPositiveDiscount)
		}
		prev = t
	}

	// Anchor the spline at (0, 1) so short horizons discount against today.
	xs := make([]float64, len(times)+1)
	ys := make([]float64, len(dfs)+1)
	ys[0] = 1
	copy(xs[1:], times)
	copy(ys[1:], dfs)

	pred := tmpl()
	if err := pred.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("NewPiecewise: fit spline: %w", err)
	}
	return &Piecewise{times: xs[1:], dfs: ys[1:], pred: pred}, nil
}

// Zero returns the continuously compounded zero rate implied by the
// interpolated discount factor at t.
func (p *Piecewise) Zero(t float64) rate.Rate {
	if t == 0 {
		t = zeroMaturityEpsilon
	}
	return rate.New(-math.Log(p.pred.Predict(t))/t, rate.Continuous)
}

// Discount returns the interpolated t-year discount factor.
func (p *Piecewise) Discount(t float64) float64 {
	return p.pred.Predict(t)
}

// Times returns a copy of the curve's maturities in insertion order.
func (p *Piecewise) Times() []float64 {
	out := make([]float64, len(p.times))
	copy(out, p.times)
	return out
}

// DiscountFactors returns a copy of the discount factors at Times.
func (p *Piecewise) DiscountFactors() []float64 {
	out := make([]float64, len(p.dfs))
	copy(out, p.dfs)
	return out
}

func (p *Piecewise) String() string {
	return fmt.Sprintf("Piecewise(%d points, last maturity %g)", len(p.times), p.times[len(p.times)-1])
}

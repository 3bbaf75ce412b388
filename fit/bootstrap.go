package fit

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/meenmo/curvefit/curve"
)

// bootstrap builds a piecewise discount curve by forward substitution: the
// first point comes from a flat-rate solve against the first quote, then each
// subsequent quote adds one maturity whose discount factor is solved as the
// single free variable of a squared-error fit, all prior points held fixed.
// Step i depends on step i-1's factor, so the loop is strictly sequential.
func (e *Engine) bootstrap(tmpl curve.Template, quotes []Quote) (*curve.Piecewise, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("Fit: %w", ErrNoQuotes)
	}
	if tmpl == nil {
		tmpl = curve.CubicTemplate
	}
	prev := 0.0
	for i, q := range quotes {
		m := q.Maturity()
		if !(m > prev) {
			return nil, fmt.Errorf("Fit: quote %d maturity %v after %v: %w", i, m, prev, ErrQuotesNotSorted)
		}
		prev = m
	}

	times := make([]float64, 0, len(quotes))
	dfs := make([]float64, 0, len(quotes))

	// First point: calibrate a flat curve to the shortest quote alone and
	// read its discount factor at that maturity.
	t0 := quotes[0].Maturity()
	flat, err := e.fitLoss(curve.Flat(0), quotes[:1], Loss{}, ConstantParams())
	if err != nil {
		return nil, fmt.Errorf("Fit: bootstrap quote 0 (t=%g): %w", t0, err)
	}
	times = append(times, t0)
	dfs = append(dfs, flat.Discount(t0))

	for i, q := range quotes[1:] {
		times = append(times, q.Maturity())
		dfs = append(dfs, dfs[len(dfs)-1])
		last := len(dfs) - 1

		inst := q.Instrument
		price := q.Price
		obj := func(x []float64) float64 {
			dfs[last] = x[0]
			p, err := curve.NewPiecewise(tmpl, times, dfs)
			if err != nil {
				return math.Inf(1)
			}
			r := inst.PresentValue(p) - price
			return r * r
		}

		xs, _, err := e.minimize(obj,
			[]float64{dfs[last-1]},
			[]float64{e.cfg.DiscountMin},
			[]float64{e.cfg.DiscountMax})
		if err != nil {
			return nil, fmt.Errorf("Fit: bootstrap quote %d (t=%g): %w", i+1, q.Maturity(), err)
		}
		dfs[last] = xs[0]
	}

	out, err := curve.NewPiecewise(tmpl, times, dfs)
	if err != nil {
		return nil, fmt.Errorf("Fit: assemble bootstrapped curve: %w", err)
	}
	if e.cfg.Logger != nil {
		e.cfg.Logger.WithFields(logrus.Fields{
			"method": "bootstrap",
			"points": len(times),
			"front":  times[0],
			"back":   times[len(times)-1],
		}).Debug("bootstrap complete")
	}
	return out, nil
}

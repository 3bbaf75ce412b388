package fit

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/curvefit/curve"
)

func (e *Engine) fitLoss(model0 curve.TermStructure, quotes []Quote, loss Loss, params []Param) (curve.TermStructure, error) {
	if model0 == nil {
		return nil, fmt.Errorf("Fit: nil seed model")
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("Fit: %w", ErrNoQuotes)
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("Fit: %w", ErrNoParams)
	}
	lossFn := loss.Fn
	if lossFn == nil {
		lossFn = SquaredError
	}

	// Pinned parameters (equal bounds) are written once and excluded from
	// the search space.
	seed := model0
	free := make([]Param, 0, len(params))
	for _, p := range params {
		if p.Min > p.Max {
			return nil, fmt.Errorf("Fit: parameter %s bounds [%v, %v]: %w", p.Name, p.Min, p.Max, ErrInvalidBounds)
		}
		if p.Min == p.Max {
			seed = p.Set(seed, p.Min)
			continue
		}
		free = append(free, p)
	}
	if len(free) == 0 {
		return seed, nil
	}

	init := make([]float64, len(free))
	lower := make([]float64, len(free))
	upper := make([]float64, len(free))
	for i, p := range free {
		init[i] = p.Get(seed)
		lower[i] = p.Min
		upper[i] = p.Max
	}

	obj := e.objective(seed, quotes, lossFn, free)
	xs, f, err := e.minimize(obj, init, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	fitted := apply(seed, free, xs)
	if e.cfg.Logger != nil {
		e.cfg.Logger.WithFields(logrus.Fields{
			"method":    "loss",
			"quotes":    len(quotes),
			"free":      len(free),
			"objective": f,
		}).Debug("loss fit complete")
	}
	return fitted, nil
}

// objective builds J(theta): the summed per-quote loss of pricing residuals
// for the candidate model theta describes. Quotes price independently, so
// evaluation fans out across Workers goroutines; residuals are reduced in
// quote order to keep the sum deterministic.
func (e *Engine) objective(seed curve.TermStructure, quotes []Quote, lossFn LossFunc, free []Param) objectiveFn {
	return func(x []float64) float64 {
		m := apply(seed, free, x)
		residuals := make([]float64, len(quotes))
		if e.cfg.Workers > 1 && len(quotes) > 1 {
			var g errgroup.Group
			g.SetLimit(e.cfg.Workers)
			for i, q := range quotes {
				g.Go(func() error {
					residuals[i] = q.Instrument.PresentValue(m) - q.Price
					return nil
				})
			}
			_ = g.Wait()
		} else {
			for i, q := range quotes {
				residuals[i] = q.Instrument.PresentValue(m) - q.Price
			}
		}
		total := 0.0
		for _, r := range residuals {
			total += lossFn(r)
		}
		return total
	}
}

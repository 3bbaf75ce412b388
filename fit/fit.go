// Package fit calibrates term-structure models to market quotes. A Loss fit
// tunes the bounded parameters of a parametric model by global derivative-free
// minimization of summed pricing residuals; a Bootstrap fit builds a piecewise
// discount curve one maturity at a time, repricing each quote exactly.
package fit

import (
	"fmt"

	"github.com/meenmo/curvefit/curve"
)

// Engine runs calibrations under one Config. The zero-cost way to a single
// fit with defaults is the package-level Fit.
type Engine struct {
	cfg Config
}

// NewEngine returns an engine with unset config fields replaced by their
// DefaultConfig values.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.Population < 0 {
		cfg.Population = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.ConvergenceTol <= 0 {
		cfg.ConvergenceTol = def.ConvergenceTol
	}
	if cfg.ConvergenceWindow <= 0 {
		cfg.ConvergenceWindow = def.ConvergenceWindow
	}
	if cfg.SigmaFraction <= 0 || cfg.SigmaFraction > 1 {
		cfg.SigmaFraction = def.SigmaFraction
	}
	if cfg.DiscountMin <= 0 {
		cfg.DiscountMin = def.DiscountMin
	}
	if cfg.DiscountMax <= cfg.DiscountMin {
		cfg.DiscountMax = def.DiscountMax
	}
	return &Engine{cfg: cfg}
}

// Fit calibrates a model against the quotes using the selected method.
//
// For Loss, model0 is the seed whose params are tuned; the fitted model is a
// fresh value and model0 is never mutated. A nil method defaults to a
// squared-error Loss. For Bootstrap, model0 and params are ignored and the
// result is a *curve.Piecewise over the quote maturities.
func (e *Engine) Fit(model0 curve.TermStructure, quotes []Quote, method Method, params []Param) (curve.TermStructure, error) {
	switch m := method.(type) {
	case nil:
		return e.fitLoss(model0, quotes, Loss{}, params)
	case Loss:
		return e.fitLoss(model0, quotes, m, params)
	case Bootstrap:
		return e.bootstrap(m.Template, quotes)
	default:
		return nil, fmt.Errorf("Fit: unsupported method %T", method)
	}
}

// Fit calibrates with the default engine configuration.
func Fit(model0 curve.TermStructure, quotes []Quote, method Method, params []Param) (curve.TermStructure, error) {
	return NewEngine(DefaultConfig()).Fit(model0, quotes, method, params)
}

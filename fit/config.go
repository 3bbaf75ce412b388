package fit

import "github.com/sirupsen/logrus"

// Config tunes the fit engine. The zero value of any field falls back to its
// DefaultConfig counterpart when passed to NewEngine.
type Config struct {
	// MaxIterations caps the optimizer's generations per fit.
	MaxIterations int

	// Population is the optimizer's sample size per generation. Zero lets
	// the optimizer pick its dimension-based default.
	Population int

	// Seed fixes the optimizer's random source so fits are reproducible.
	Seed uint64

	// Workers bounds concurrent per-quote pricing inside one objective
	// evaluation. 1 prices sequentially.
	Workers int

	// ConvergenceTol ends a fit early once the best objective value stops
	// improving by more than this over ConvergenceWindow iterations.
	ConvergenceTol float64

	// ConvergenceWindow is the iteration span ConvergenceTol is measured over.
	ConvergenceWindow int

	// SigmaFraction scales each parameter's initial search spread as a
	// fraction of its bound width.
	SigmaFraction float64

	// DiscountMin and DiscountMax bound every discount factor solved by a
	// bootstrap step.
	DiscountMin float64
	DiscountMax float64

	// Logger receives per-fit progress at debug level. Nil disables logging.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the engine defaults used when fields are unset.
func DefaultConfig() Config {
	return Config{
		MaxIterations:     300,
		Seed:              1,
		Workers:           1,
		ConvergenceTol:    1e-16,
		ConvergenceWindow: 100,
		SigmaFraction:     0.3,
		DiscountMin:       1e-9,
		DiscountMax:       2.0,
	}
}

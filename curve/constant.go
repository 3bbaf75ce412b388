package curve

import (
	"fmt"

	"github.com/meenmo/curvefit/rate"
)

// Constant is a flat term structure: the same rate at every maturity. It
// seeds the first step of a bootstrap and serves as a stub curve in tests.
type Constant struct {
	R rate.Rate
}

// NewConstant returns the flat curve at r.
func NewConstant(r rate.Rate) Constant {
	return Constant{R: r}
}

// Flat returns the flat curve at a continuously compounded value.
func Flat(value float64) Constant {
	return Constant{R: rate.New(value, rate.Continuous)}
}

// Zero returns the flat rate regardless of maturity.
func (c Constant) Zero(t float64) rate.Rate {
	return c.R
}

// Discount returns the t-year discount factor at the flat rate.
func (c Constant) Discount(t float64) float64 {
	return rate.Discount(c.R, t)
}

func (c Constant) String() string {
	return fmt.Sprintf("Constant(%v)", c.R)
}

package curve

import (
	"fmt"
	"math"

	"github.com/meenmo/curvefit/rate"
)

// NelsonSiegel is the three-factor parametric zero curve
//
//	zero(t) = beta0 + beta1*(1-exp(-x))/x + beta2*((1-exp(-x))/x - exp(-x)), x = t/tau1
//
// with beta0 the long-term level, beta1 the short-term slope, beta2 the
// medium-term curvature and tau1 the decay speed. Zero rates are continuously
// compounded. The value is immutable; fitting produces a fresh instance.
type NelsonSiegel struct {
	Tau1  float64
	Beta0 float64
	Beta1 float64
	Beta2 float64
}

// NewNelsonSiegel validates tau1 > 0 and returns the model.
func NewNelsonSiegel(tau1, beta0, beta1, beta2 float64) (NelsonSiegel, error) {
	if !(tau1 > 0) {
		return NelsonSiegel{}, fmt.Errorf("NewNelsonSiegel: tau1 %v: %w", tau1, ErrNonPositiveDecay)
	}
	return NelsonSiegel{Tau1: tau1, Beta0: beta0, Beta1: beta1, Beta2: beta2}, nil
}

// NelsonSiegelWithDecay returns a flat unit-level curve with the given decay:
// beta0 = 1 and zero slope and curvature.
func NelsonSiegelWithDecay(tau1 float64) (NelsonSiegel, error) {
	return NewNelsonSiegel(tau1, 1, 0, 0)
}

// DefaultNelsonSiegel is the flat unit-level seed with unit decay, the usual
// starting point of a calibration.
func DefaultNelsonSiegel() NelsonSiegel {
	return NelsonSiegel{Tau1: 1, Beta0: 1}
}

// Zero returns the continuously compounded zero rate at maturity t.
func (m NelsonSiegel) Zero(t float64) rate.Rate {
	if t == 0 {
		t = zeroMaturityEpsilon
	}
	x := t / m.Tau1
	ex := math.Exp(-x)
	slope := (1 - ex) / x
	z := m.Beta0 + m.Beta1*slope + m.Beta2*(slope-ex)
	return rate.New(z, rate.Continuous)
}

// Discount returns the t-year discount factor implied by the zero rate.
func (m NelsonSiegel) Discount(t float64) float64 {
	return rate.Discount(m.Zero(t), t)
}

func (m NelsonSiegel) String() string {
	return fmt.Sprintf("NelsonSiegel(tau1=%g, beta0=%g, beta1=%g, beta2=%g)",
		m.Tau1, m.Beta0, m.Beta1, m.Beta2)
}

// NelsonSiegelSvensson extends NelsonSiegel with a second hump carrying its
// own decay tau2 and loading beta3, giving the curve a second inflection.
type NelsonSiegelSvensson struct {
	Tau1  float64
	Tau2  float64
	Beta0 float64
	Beta1 float64
	Beta2 float64
	Beta3 float64
}

// NewNelsonSiegelSvensson validates tau1 > 0 and tau2 > 0 and returns the model.
func NewNelsonSiegelSvensson(tau1, tau2, beta0, beta1, beta2, beta3 float64) (NelsonSiegelSvensson, error) {
	if !(tau1 > 0) {
		return NelsonSiegelSvensson{}, fmt.Errorf("NewNelsonSiegelSvensson: tau1 %v: %w", tau1, ErrNonPositiveDecay)
	}
	if !(tau2 > 0) {
		return NelsonSiegelSvensson{}, fmt.Errorf("NewNelsonSiegelSvensson: tau2 %v: %w", tau2, ErrNonPositiveDecay)
	}
	return NelsonSiegelSvensson{
		Tau1: tau1, Tau2: tau2,
		Beta0: beta0, Beta1: beta1, Beta2: beta2, Beta3: beta3,
	}, nil
}

// DefaultNelsonSiegelSvensson is the flat zero curve with unit decays.
func DefaultNelsonSiegelSvensson() NelsonSiegelSvensson {
	return NelsonSiegelSvensson{Tau1: 1, Tau2: 1}
}

// Zero returns the continuously compounded zero rate at maturity t.
func (m NelsonSiegelSvensson) Zero(t float64) rate.Rate {
	if t == 0 {
		t = zeroMaturityEpsilon
	}
	x1 := t / m.Tau1
	x2 := t / m.Tau2
	ex1 := math.Exp(-x1)
	ex2 := math.Exp(-x2)
	slope := (1 - ex1) / x1
	z := m.Beta0 + m.Beta1*slope + m.Beta2*(slope-ex1) + m.Beta3*((1-ex2)/x2-ex2)
	return rate.New(z, rate.Continuous)
}

// Discount returns the t-year discount factor implied by the zero rate.
func (m NelsonSiegelSvensson) Discount(t float64) float64 {
	return rate.Discount(m.Zero(t), t)
}

func (m NelsonSiegelSvensson) String() string {
	return fmt.Sprintf("NelsonSiegelSvensson(tau1=%g, tau2=%g, beta0=%g, beta1=%g, beta2=%g, beta3=%g)",
		m.Tau1, m.Tau2, m.Beta0, m.Beta1, m.Beta2, m.Beta3)
}

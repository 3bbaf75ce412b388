package fit

import (
	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/rate"
)

// Param describes one tunable scalar of a model: its bounds and the accessors
// that read it from and write it into a model value. Set returns an updated
// copy, leaving the input model untouched. Equal bounds pin the parameter at
// that value without searching over it.
type Param struct {
	Name string
	Min  float64
	Max  float64
	Get  func(m curve.TermStructure) float64
	Set  func(m curve.TermStructure, v float64) curve.TermStructure
}

// apply writes the vector into the model through the params, one Set at a time.
func apply(m curve.TermStructure, params []Param, xs []float64) curve.TermStructure {
	for i, p := range params {
		m = p.Set(m, xs[i])
	}
	return m
}

// NelsonSiegelParams returns the tunable set for a curve.NelsonSiegel seed
// with the default calibration bounds: decay in [0.05, 10], loadings in
// [-1, 1]. The accessors expect the model to be a curve.NelsonSiegel.
func NelsonSiegelParams() []Param {
	return []Param{
		{
			Name: "tau1", Min: 0.05, Max: 10,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegel).Tau1 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				ns := m.(curve.NelsonSiegel)
				ns.Tau1 = v
				return ns
			},
		},
		{
			Name: "beta0", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegel).Beta0 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				ns := m.(curve.NelsonSiegel)
				ns.Beta0 = v
				return ns
			},
		},
		{
			Name: "beta1", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegel).Beta1 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				ns := m.(curve.NelsonSiegel)
				ns.Beta1 = v
				return ns
			},
		},
		{
			Name: "beta2", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegel).Beta2 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				ns := m.(curve.NelsonSiegel)
				ns.Beta2 = v
				return ns
			},
		},
	}
}

// NelsonSiegelSvenssonParams returns the tunable set for a
// curve.NelsonSiegelSvensson seed with the default calibration bounds.
func NelsonSiegelSvenssonParams() []Param {
	return []Param{
		{
			Name: "tau1", Min: 0.05, Max: 10,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegelSvensson).Tau1 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				nss := m.(curve.NelsonSiegelSvensson)
				nss.Tau1 = v
				return nss
			},
		},
		{
			Name: "tau2", Min: 0.05, Max: 10,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegelSvensson).Tau2 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				nss := m.(curve.NelsonSiegelSvensson)
				nss.Tau2 = v
				return nss
			},
		},
		{
			Name: "beta0", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegelSvensson).Beta0 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				nss := m.(curve.NelsonSiegelSvensson)
				nss.Beta0 = v
				return nss
			},
		},
		{
			Name: "beta1", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegelSvensson).Beta1 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				nss := m.(curve.NelsonSiegelSvensson)
				nss.Beta1 = v
				return nss
			},
		},
		{
			Name: "beta2", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegelSvensson).Beta2 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				nss := m.(curve.NelsonSiegelSvensson)
				nss.Beta2 = v
				return nss
			},
		},
		{
			Name: "beta3", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.NelsonSiegelSvensson).Beta3 },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				nss := m.(curve.NelsonSiegelSvensson)
				nss.Beta3 = v
				return nss
			},
		},
	}
}

// ConstantParams returns the tunable set for a curve.Constant seed: the flat
// continuously compounded rate, bounded to [-1, 1].
func ConstantParams() []Param {
	return []Param{
		{
			Name: "rate", Min: -1, Max: 1,
			Get: func(m curve.TermStructure) float64 { return m.(curve.Constant).R.Value() },
			Set: func(m curve.TermStructure, v float64) curve.TermStructure {
				return curve.Constant{R: rate.New(v, rate.Continuous)}
			},
		},
	}
}

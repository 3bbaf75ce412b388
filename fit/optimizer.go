package fit

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// boundsPenaltyWeight scales the quadratic penalty applied when the optimizer
// samples outside its box. The objective itself is always evaluated at the
// clamped point, so the penalty only steers the population back inside.
const boundsPenaltyWeight = 1e6

type objectiveFn func(x []float64) float64

// minimize runs the bounded global search: CMA-ES with a per-dimension
// initial spread of SigmaFraction times the bound width, a fixed generation
// budget, and early stop once the best value stalls. It returns the best
// in-bounds point and its raw objective value.
func (e *Engine) minimize(obj objectiveFn, init, lower, upper []float64) ([]float64, float64, error) {
	n := len(init)
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = clampTo(init[i], lower[i], upper[i])
	}

	bounded := func(x []float64) float64 {
		clamped := make([]float64, n)
		penalty := 0.0
		for i, v := range x {
			c := clampTo(v, lower[i], upper[i])
			d := v - c
			penalty += d * d
			clamped[i] = c
		}
		return obj(clamped) + boundsPenaltyWeight*penalty
	}

	pop := e.cfg.Population
	if pop <= 0 {
		pop = 4 + int(3*math.Log(float64(n)))
	}

	sym := mat.NewSymDense(n, nil)
	for i := range init {
		s := e.cfg.SigmaFraction * (upper[i] - lower[i])
		sym.SetSym(i, i, s*s)
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, 0, fmt.Errorf("minimize: %w: initial covariance not positive definite", ErrOptimizationFailed)
	}

	method := &optimize.CmaEsChol{
		InitCholesky: &chol,
		Population:   pop,
		Src:          rand.NewSource(e.cfg.Seed),
	}
	settings := &optimize.Settings{
		MajorIterations: e.cfg.MaxIterations,
		FuncEvaluations: e.cfg.MaxIterations * pop,
		Converger: &optimize.FunctionConverge{
			Absolute:   e.cfg.ConvergenceTol,
			Iterations: e.cfg.ConvergenceWindow,
		},
	}

	res, err := optimize.Minimize(optimize.Problem{Func: bounded}, x0, settings, method)
	if err != nil {
		return nil, 0, fmt.Errorf("minimize: %w: %v", ErrOptimizationFailed, err)
	}
	if res == nil || len(res.X) != n {
		return nil, 0, fmt.Errorf("minimize: %w: optimizer returned no location", ErrOptimizationFailed)
	}

	best := make([]float64, n)
	for i, v := range res.X {
		best[i] = clampTo(v, lower[i], upper[i])
	}
	f := obj(best)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, 0, fmt.Errorf("minimize: %w: best objective %v after %d evaluations", ErrOptimizationFailed, f, res.FuncEvaluations)
	}
	return best, f, nil
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

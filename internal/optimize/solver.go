package optimize

import (
	"math"
	"time"

	"gonum.org/v1/gonum/diff/fd"
	gopt "gonum.org/v1/gonum/optimize"

	"folio/internal/domain"
)

const (
	// Exterior penalty weight on the sum-to-one constraint.
	penaltyWeight = 1000.0

	// Caps so a pathological covariance matrix cannot hang a request.
	maxIterations = 2000
	maxRuntime    = 10 * time.Second
)

// solveSimplex minimizes fn over {w : w_i in [0,1], sum w = 1}. Box
// bounds are enforced by projection inside the objective, the equality
// constraint by a quadratic penalty. Tries Nelder-Mead first, then
// BFGS with numeric gradients. Converges fine for 2-30 assets; anything
// the solver cannot land is reported as ErrNotConverged.
func solveSimplex(n int, fn func(x []float64) float64) (domain.Weights, error) {
	objective := func(x []float64) float64 {
		xp := projectToBounds(x)
		obj := fn(xp)

		sum := 0.0
		for _, v := range xp {
			sum += v
		}
		return obj + penaltyWeight*(sum-1)*(sum-1)
	}
	problem := gopt.Problem{
		Func: objective,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, objective, x, nil)
		},
	}

	initial := make([]float64, n)
	for i := range initial {
		initial[i] = 1 / float64(n)
	}
	settings := &gopt.Settings{
		MajorIterations: maxIterations,
		Runtime:         maxRuntime,
	}

	result, err := gopt.Minimize(problem, initial, settings, &gopt.NelderMead{})
	if err != nil || !converged(result.Status) {
		result, err = gopt.Minimize(problem, initial, settings, &gopt.BFGS{})
		if err != nil || !converged(result.Status) {
			return nil, ErrNotConverged
		}
	}

	final := projectToBounds(result.X)
	sum := 0.0
	for _, v := range final {
		sum += v
	}
	weights := make(domain.Weights, n)
	for i, v := range final {
		weights[i] = math.Max(0, v/math.Max(sum, 1e-10))
	}
	return domain.NewWeights(weights), nil
}

func converged(s gopt.Status) bool {
	switch s {
	case gopt.Success, gopt.GradientThreshold, gopt.FunctionConvergence, gopt.FunctionThreshold:
		return true
	}
	return false
}

func projectToBounds(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Max(0, math.Min(1, v))
	}
	return out
}

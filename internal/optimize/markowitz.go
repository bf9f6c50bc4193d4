package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"folio/internal/domain"
)

// MaxSharpe finds the long-only weight vector maximizing expected
// return over volatility. The ratio here is raw return over vol with
// no risk-free leg, which is NOT the same convention the metrics
// package displays (see DESIGN.md).
func MaxSharpe(rt *domain.ReturnTable) (*Result, error) {
	mu, sigma, err := AnnualizedMoments(rt)
	if err != nil {
		return nil, err
	}
	n := len(mu)
	if n == 1 {
		return singleAssetResult(mu, sigma, false), nil
	}

	weights, err := solveSimplex(n, func(x []float64) float64 {
		ret, vol := portfolioStats(mu, sigma, x)
		return -ret / math.Max(vol, 1e-10)
	})
	if err != nil {
		return nil, err
	}

	return resultAt(mu, sigma, weights), nil
}

// MinVariance minimizes w'Σw under the same simplex constraints.
func MinVariance(rt *domain.ReturnTable) (*Result, error) {
	mu, sigma, err := AnnualizedMoments(rt)
	if err != nil {
		return nil, err
	}
	n := len(mu)
	if n == 1 {
		return singleAssetResult(mu, sigma, false), nil
	}

	weights, err := solveSimplex(n, func(x []float64) float64 {
		_, vol := portfolioStats(mu, sigma, x)
		return vol * vol
	})
	if err != nil {
		return nil, err
	}

	return resultAt(mu, sigma, weights), nil
}

// EqualWeight is the trivial 1/N allocation. It never fails: on a
// table too short for a covariance estimate it reports zero risk and
// return rather than erroring, since there is nothing to solve.
func EqualWeight(rt *domain.ReturnTable) *Result {
	n := rt.NumAssets()
	weights := domain.EqualWeights(n)

	mu, sigma, err := AnnualizedMoments(rt)
	if err != nil {
		return &Result{Weights: weights}
	}
	return resultAt(mu, sigma, weights)
}

func resultAt(mu []float64, sigma *mat.SymDense, weights domain.Weights) *Result {
	ret, vol := portfolioStats(mu, sigma, weights)
	out := &Result{
		Weights:        weights,
		ExpectedReturn: ret,
		Volatility:     vol,
	}
	if out.Volatility > 0 {
		out.SharpeRatio = out.ExpectedReturn / out.Volatility
	}
	return out
}

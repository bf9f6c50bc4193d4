// Package optimize builds portfolio weight vectors on the unit simplex:
// max-Sharpe mean-variance, minimum variance, risk parity, and the
// closed-form equal-weight fallback, all sharing one result shape.
package optimize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"folio/internal/domain"
	"folio/internal/metrics"
)

// ErrNotConverged is the explicit failure signal for the nonlinear
// solvers. Callers must check before using the result; it never
// panics through.
var ErrNotConverged = errors.New("optimizer did not converge")

// Result is the common output of every optimizer. RiskContributions is
// only populated by RiskParity, as each asset's share of total
// portfolio risk (sums to 1).
type Result struct {
	Weights           domain.Weights `json:"weights"`
	ExpectedReturn    float64        `json:"expectedReturn"`
	Volatility        float64        `json:"volatility"`
	SharpeRatio       float64        `json:"sharpeRatio"`
	RiskContributions []float64      `json:"riskContributions,omitempty"`
}

// AnnualizedMoments computes the annualized mean return vector and
// sample covariance matrix from daily returns. Needs at least two
// return rows for the covariance to exist.
func AnnualizedMoments(rt *domain.ReturnTable) ([]float64, *mat.SymDense, error) {
	n := rt.NumAssets()
	if n == 0 {
		return nil, nil, fmt.Errorf("return table has no assets")
	}
	rows := rt.NumRows()
	if rows < 2 {
		return nil, nil, fmt.Errorf("need at least 2 return observations to estimate covariance, have %d", rows)
	}

	mu := make([]float64, n)
	flat := make([]float64, 0, rows*n)
	for _, row := range rt.Returns {
		flat = append(flat, row...)
		for j, r := range row {
			mu[j] += r
		}
	}
	for j := range mu {
		mu[j] = mu[j] / float64(rows) * metrics.TradingDays
	}

	x := mat.NewDense(rows, n, flat)
	sigma := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(sigma, x, nil)
	sigma.ScaleSym(metrics.TradingDays, sigma)

	return mu, sigma, nil
}

// portfolioStats evaluates annualized return and volatility for a
// candidate weight vector.
func portfolioStats(mu []float64, sigma *mat.SymDense, w []float64) (float64, float64) {
	var ret, variance float64
	for i := range w {
		ret += mu[i] * w[i]
		for j := range w {
			variance += w[i] * w[j] * sigma.At(i, j)
		}
	}
	return ret, math.Sqrt(math.Max(variance, 0))
}

func singleAssetResult(mu []float64, sigma *mat.SymDense, withRC bool) *Result {
	out := &Result{
		Weights:        domain.Weights{1},
		ExpectedReturn: mu[0],
		Volatility:     math.Sqrt(math.Max(sigma.At(0, 0), 0)),
	}
	if out.Volatility > 0 {
		out.SharpeRatio = out.ExpectedReturn / out.Volatility
	}
	if withRC {
		out.RiskContributions = []float64{1}
	}
	return out
}

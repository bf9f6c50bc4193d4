package optimize

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"folio/internal/domain"
)

// RiskParity finds weights so each asset contributes equally to total
// portfolio risk. The objective is the sum of squared deviations
// between each risk contribution and an equal share of total risk.
func RiskParity(rt *domain.ReturnTable) (*Result, error) {
	mu, sigma, err := AnnualizedMoments(rt)
	if err != nil {
		return nil, err
	}
	n := len(mu)
	if n == 1 {
		return singleAssetResult(mu, sigma, true), nil
	}

	weights, err := solveSimplex(n, func(x []float64) float64 {
		rc := riskContributions(sigma, x)
		var total float64
		for _, c := range rc {
			total += c
		}
		// target is an equal share of total portfolio risk
		target := total / float64(n)
		var obj float64
		for _, c := range rc {
			d := c - target
			obj += d * d
		}
		return obj
	})
	if err != nil {
		return nil, err
	}

	out := resultAt(mu, sigma, weights)
	out.RiskContributions = normalizedRiskContributions(sigma, weights)
	return out, nil
}

// riskContributions is w_i times the marginal risk contribution
// (Σw)_i / σ(w), per asset. The entries sum to σ(w).
func riskContributions(sigma *mat.SymDense, w []float64) []float64 {
	n := len(w)
	sw := make([]float64, n)
	var variance float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sw[i] += sigma.At(i, j) * w[j]
		}
		variance += w[i] * sw[i]
	}
	vol := math.Sqrt(math.Max(variance, 1e-16))

	out := make([]float64, n)
	for i := range out {
		out[i] = w[i] * sw[i] / vol
	}
	return out
}

// normalizedRiskContributions rescales contributions to fractions of
// total risk, which is what risk-budget displays want.
func normalizedRiskContributions(sigma *mat.SymDense, w []float64) []float64 {
	rc := riskContributions(sigma, w)
	var total float64
	for _, c := range rc {
		total += c
	}
	if total <= 0 {
		return rc
	}
	for i := range rc {
		rc[i] /= total
	}
	return rc
}

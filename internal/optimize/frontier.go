package optimize

import (
	"fmt"
	"math"
	"math/rand"

	"folio/internal/domain"
)

// FrontierPoint is one random portfolio sampled for an efficient
// frontier scatter.
type FrontierPoint struct {
	Return     float64 `json:"return"`
	Volatility float64 `json:"volatility"`
	Sharpe     float64 `json:"sharpe"`
}

// Frontier samples random simplex portfolios and evaluates their
// annualized return/volatility, the cheap Monte Carlo approximation of
// the efficient frontier the dashboard scatters. Seeded so repeated
// renders are identical.
func Frontier(rt *domain.ReturnTable, numPortfolios int, seed int64) ([]FrontierPoint, error) {
	if numPortfolios <= 0 {
		return nil, fmt.Errorf("numPortfolios must be positive, got %d", numPortfolios)
	}
	mu, sigma, err := AnnualizedMoments(rt)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	n := len(mu)
	out := make([]FrontierPoint, 0, numPortfolios)
	for i := 0; i < numPortfolios; i++ {
		raw := make([]float64, n)
		var sum float64
		for j := range raw {
			raw[j] = rng.Float64()
			sum += raw[j]
		}
		for j := range raw {
			raw[j] /= sum
		}

		ret, vol := portfolioStats(mu, sigma, raw)
		p := FrontierPoint{Return: ret, Volatility: vol}
		p.Sharpe = ret / math.Max(vol, 1e-10)
		out = append(out, p)
	}
	return out, nil
}

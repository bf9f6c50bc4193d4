package metrics

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	folio_errors "folio/internal"
	"folio/internal/domain"
)

// TradingDays is the annualization convention: daily mean scales by
// 252, daily stdev by sqrt(252).
const TradingDays = 252

// PortfolioMetrics is the full risk/return record for one portfolio
// over one aligned price window. Ratio fields fall back to 0 in
// degenerate cases (zero volatility, no losing days, empty series)
// instead of going NaN, so callers can render them blindly.
type PortfolioMetrics struct {
	AnnualReturn     float64 `json:"annualReturn"`
	AnnualVolatility float64 `json:"annualVolatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	SortinoRatio     float64 `json:"sortinoRatio"`
	CalmarRatio      float64 `json:"calmarRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	WinRate          float64 `json:"winRate"`
	ProfitLossRatio  float64 `json:"profitLossRatio"`
	VaR95            float64 `json:"var95"`
	CVaR95           float64 `json:"cvar95"`

	Returns    []float64 `json:"returns"`
	Cumulative []float64 `json:"cumulative"`
}

// Compute derives the full metrics record for a weighted portfolio
// over the aligned price table. riskFreeRate is annualized (0.02 for
// 2%) and only enters the Sharpe and Sortino numerators.
//
// A table with fewer than two return rows yields a zeroed record, not
// an error: the caller renders a "no data" state without special-casing.
func Compute(prices *domain.PriceTable, weights domain.Weights, riskFreeRate float64) (*PortfolioMetrics, error) {
	if len(weights) != prices.NumAssets() {
		return nil, folio_errors.ErrShapeMismatch{Weights: len(weights), Assets: prices.NumAssets()}
	}

	returns := prices.Returns().Portfolio(weights)
	if len(returns) == 0 {
		return &PortfolioMetrics{Returns: []float64{}, Cumulative: []float64{}}, nil
	}
	// One return is not a distribution; report the curve but keep
	// every metric at zero.
	if len(returns) == 1 {
		return &PortfolioMetrics{Returns: returns, Cumulative: CumulativeReturns(returns)}, nil
	}

	out := &PortfolioMetrics{Returns: returns}

	mean, err := stats.Mean(returns)
	if err != nil {
		return nil, err
	}
	out.AnnualReturn = mean * TradingDays

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	out.AnnualVolatility = stdev * math.Sqrt(TradingDays)

	if out.AnnualVolatility > 0 {
		out.SharpeRatio = (out.AnnualReturn - riskFreeRate) / out.AnnualVolatility
	}

	downside := []float64{}
	wins := 0
	var winSum, lossSum float64
	for _, r := range returns {
		if r > 0 {
			wins++
			winSum += r
		} else if r < 0 {
			downside = append(downside, r)
			lossSum += r
		}
	}

	if len(downside) > 1 {
		downStdev, err := stats.StandardDeviationSample(downside)
		if err != nil {
			return nil, err
		}
		downVol := downStdev * math.Sqrt(TradingDays)
		if downVol > 0 {
			out.SortinoRatio = (out.AnnualReturn - riskFreeRate) / downVol
		}
	}

	out.Cumulative = CumulativeReturns(returns)
	out.MaxDrawdown = MaxDrawdown(out.Cumulative)
	if dd := math.Abs(out.MaxDrawdown); dd > 0 {
		out.CalmarRatio = out.AnnualReturn / dd
	}

	out.WinRate = float64(wins) / float64(len(returns))
	if len(downside) > 0 && wins > 0 {
		avgWin := winSum / float64(wins)
		avgLoss := math.Abs(lossSum / float64(len(downside)))
		if avgLoss > 0 {
			out.ProfitLossRatio = avgWin / avgLoss
		}
	}

	out.VaR95 = Percentile(returns, 5)
	out.CVaR95 = cvarBelow(returns, out.VaR95)

	return out, nil
}

// CumulativeReturns is the NAV-style curve: running product of (1+r).
func CumulativeReturns(returns []float64) []float64 {
	out := make([]float64, len(returns))
	acc := 1.0
	for i, r := range returns {
		acc *= 1 + r
		out[i] = acc
	}
	return out
}

// MaxDrawdown is the most negative excursion of the cumulative curve
// below its running maximum. The curve is relative to a starting value
// of 1, which counts as the first peak. Always in [-1, 0]; 0 only when
// the curve never dips below a prior peak.
func MaxDrawdown(cumulative []float64) float64 {
	maxDD := 0.0
	runningMax := 1.0
	for _, c := range cumulative {
		if c > runningMax {
			runningMax = c
		}
		dd := (c - runningMax) / runningMax
		if dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// Percentile is the linearly interpolated p-th percentile. The
// montanaflynn implementation snaps to observations, which shifts
// VaR noticeably on small samples, so this one is hand-rolled.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func cvarBelow(returns []float64, threshold float64) float64 {
	var sum float64
	n := 0
	for _, r := range returns {
		if r <= threshold {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Package screener scores stocks on value/growth/quality/momentum/risk
// factors and filters them against user criteria. Everything here is a
// pure function over data the caller already fetched: no provider, no
// session state.
package screener

import (
	"math"

	"github.com/montanaflynn/stats"

	"folio/internal/metrics"
)

// Fundamentals is the snapshot a data provider hands us for one stock.
// Percentages are in percent units (ROE 15 means 15%).
type Fundamentals struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Price         float64 `json:"price"`
	MarketCap     float64 `json:"marketCap"` // USD
	PERatio       float64 `json:"peRatio"`
	PBRatio       float64 `json:"pbRatio"`
	PSRatio       float64 `json:"psRatio"`
	DividendYield float64 `json:"dividendYield"`

	ROE            float64 `json:"roe"`
	ProfitMargin   float64 `json:"profitMargin"`
	RevenueGrowth  float64 `json:"revenueGrowth"`
	EarningsGrowth float64 `json:"earningsGrowth"`
	DebtToEquity   float64 `json:"debtToEquity"`
}

// Factors are the derived scores for one stock. Momentum fields are
// percent price changes; Volatility is annualized, in percent. Score
// fields are unitless and roughly 0..2 before normalization.
type Factors struct {
	Momentum1M float64 `json:"momentum1m"`
	Momentum3M float64 `json:"momentum3m"`
	Momentum6M float64 `json:"momentum6m"`
	Volatility float64 `json:"volatility"`

	ValueScore    float64 `json:"valueScore"`
	GrowthScore   float64 `json:"growthScore"`
	QualityScore  float64 `json:"qualityScore"`
	MomentumScore float64 `json:"momentumScore"`
	RiskScore     float64 `json:"riskScore"`
	Composite     float64 `json:"composite"`
}

// ScoredStock pairs fundamentals with computed factors.
type ScoredStock struct {
	Fundamentals
	Factors
}

// FactorWeights blends the five factor scores into the composite.
type FactorWeights struct {
	Value    float64 `json:"value"`
	Growth   float64 `json:"growth"`
	Quality  float64 `json:"quality"`
	Momentum float64 `json:"momentum"`
	Risk     float64 `json:"risk"`
}

// DefaultFactorWeights is the blend the dashboard ships with.
var DefaultFactorWeights = FactorWeights{
	Value:    0.25,
	Growth:   0.25,
	Quality:  0.20,
	Momentum: 0.15,
	Risk:     0.15,
}

// Trading-day lookbacks for 1/3/6 month momentum.
const (
	lookback1M = 21
	lookback3M = 63
	lookback6M = 126

	// Stocks with less history than this aren't scoreable.
	minHistory = 20
)

// Score computes factor scores for one stock from its fundamentals and
// daily closing history (oldest first). Returns false when the history
// is too short to say anything.
func Score(f Fundamentals, closes []float64) (Factors, bool) {
	if len(closes) < minHistory {
		return Factors{}, false
	}

	out := Factors{
		Momentum1M: momentum(closes, lookback1M),
		Momentum3M: momentum(closes, lookback3M),
		Momentum6M: momentum(closes, lookback6M),
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if stdev, err := stats.StandardDeviationSample(returns); err == nil {
		out.Volatility = stdev * math.Sqrt(metrics.TradingDays) * 100
	}

	// Value: cheap multiples and a dividend kicker.
	if f.PERatio > 0 && f.PERatio < 50 {
		out.ValueScore += (50 - f.PERatio) / 50
	}
	if f.PBRatio > 0 && f.PBRatio < 5 {
		out.ValueScore += (5 - f.PBRatio) / 5
	}
	if f.DividendYield > 0 {
		out.ValueScore += math.Min(f.DividendYield/5, 1)
	}

	// Growth: top and bottom line expansion.
	if f.RevenueGrowth > 0 {
		out.GrowthScore += math.Min(f.RevenueGrowth/30, 1)
	}
	if f.EarningsGrowth > 0 {
		out.GrowthScore += math.Min(f.EarningsGrowth/30, 1)
	}

	// Quality: profitability and balance-sheet strength.
	if f.ROE > 0 {
		out.QualityScore += math.Min(f.ROE/30, 1)
	}
	if f.ProfitMargin > 0 {
		out.QualityScore += math.Min(f.ProfitMargin/20, 1)
	}
	if f.DebtToEquity < 1 {
		out.QualityScore += 1 - f.DebtToEquity
	}

	if out.Momentum3M > 0 {
		out.MomentumScore = math.Min(out.Momentum3M/30, 1)
	}
	if out.Volatility > 0 {
		out.RiskScore = math.Min(30/out.Volatility, 2)
	}

	out.Composite = out.ValueScore*DefaultFactorWeights.Value +
		out.GrowthScore*DefaultFactorWeights.Growth +
		out.QualityScore*DefaultFactorWeights.Quality +
		out.MomentumScore*DefaultFactorWeights.Momentum +
		out.RiskScore*DefaultFactorWeights.Risk

	return out, true
}

// momentum is the percent change over the trailing lookback window, 0
// when the history is shorter than the window.
func momentum(closes []float64, lookback int) float64 {
	if len(closes) <= lookback {
		return 0
	}
	base := closes[len(closes)-1-lookback]
	if base == 0 {
		return 0
	}
	return (closes[len(closes)-1]/base - 1) * 100
}

// WeightedComposite recomputes each stock's composite under custom
// factor weights and min-max normalizes the result to [0, 1] across
// the set.
func WeightedComposite(rows []ScoredStock, w FactorWeights) []ScoredStock {
	out := make([]ScoredStock, len(rows))
	copy(out, rows)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range out {
		c := out[i].ValueScore*w.Value +
			out[i].GrowthScore*w.Growth +
			out[i].QualityScore*w.Quality +
			out[i].MomentumScore*w.Momentum +
			out[i].RiskScore*w.Risk
		out[i].Composite = c
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	if hi > lo {
		for i := range out {
			out[i].Composite = (out[i].Composite - lo) / (hi - lo)
		}
	}
	return out
}

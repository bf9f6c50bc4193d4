package screener

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Criteria are the screening thresholds. Zero values mean "no
// constraint" for that field.
type Criteria struct {
	MinMarketCap     float64  `json:"minMarketCap"` // USD
	MaxPE            float64  `json:"maxPe"`
	MinROE           float64  `json:"minRoe"`
	MaxVolatility    float64  `json:"maxVolatility"` // annualized percent
	MinDividendYield float64  `json:"minDividendYield"`
	Sectors          []string `json:"sectors,omitempty"`
}

// Filter applies criteria to scored stocks. Quirks carried over from
// the dashboard's behavior: a negative PE (loss-making company) passes
// the MaxPE check, market-cap and ROE floors only apply when some
// candidate actually sits below them, and a sector filter that would
// eliminate everyone is ignored. When nothing at all survives, the
// criteria are automatically relaxed (see Relax) rather than returning
// an empty screen.
func Filter(rows []ScoredStock, c Criteria) []ScoredStock {
	out := rows

	if c.MinMarketCap > 0 && anyBelow(out, c.MinMarketCap, func(s ScoredStock) float64 { return s.MarketCap }) {
		out = keep(out, func(s ScoredStock) bool { return s.MarketCap >= c.MinMarketCap })
	}
	if c.MaxPE > 0 {
		out = keep(out, func(s ScoredStock) bool { return s.PERatio <= c.MaxPE || s.PERatio <= 0 })
	}
	if c.MinROE > 0 && anyBelow(out, c.MinROE, func(s ScoredStock) float64 { return s.ROE }) {
		out = keep(out, func(s ScoredStock) bool { return s.ROE >= c.MinROE })
	}
	if c.MaxVolatility > 0 {
		out = keep(out, func(s ScoredStock) bool { return s.Volatility <= c.MaxVolatility })
	}
	if len(c.Sectors) > 0 {
		bySector := keep(out, func(s ScoredStock) bool { return contains(c.Sectors, s.Sector) })
		if len(bySector) > 0 {
			out = bySector
		}
	}
	if c.MinDividendYield > 0 {
		out = keep(out, func(s ScoredStock) bool { return s.DividendYield >= c.MinDividendYield })
	}

	if len(out) == 0 && len(rows) > 0 {
		return Relax(rows, c)
	}
	return out
}

// Relax widens thresholds around the candidate medians: half the
// median market cap, twice the median positive PE, 80% of median ROE,
// 1.5x median volatility. If even that leaves nothing, it falls back
// to the top 20 by composite score. Never returns an empty set for a
// non-empty input.
func Relax(rows []ScoredStock, c Criteria) []ScoredStock {
	out := rows

	if c.MinMarketCap > 0 {
		if m, ok := median(rows, func(s ScoredStock) float64 { return s.MarketCap }, nil); ok {
			out = keep(out, func(s ScoredStock) bool { return s.MarketCap >= m*0.5 })
		}
	}
	if c.MaxPE > 0 {
		if m, ok := median(rows, func(s ScoredStock) float64 { return s.PERatio }, func(v float64) bool { return v > 0 }); ok {
			out = keep(out, func(s ScoredStock) bool { return s.PERatio <= m*2 || s.PERatio <= 0 })
		}
	}
	if c.MinROE > 0 {
		if m, ok := median(rows, func(s ScoredStock) float64 { return s.ROE }, nil); ok {
			out = keep(out, func(s ScoredStock) bool { return s.ROE >= m*0.8 })
		}
	}
	if c.MaxVolatility > 0 {
		if m, ok := median(rows, func(s ScoredStock) float64 { return s.Volatility }, nil); ok {
			out = keep(out, func(s ScoredStock) bool { return s.Volatility <= m*1.5 })
		}
	}

	if len(out) == 0 {
		out = TopByComposite(rows, 20)
	}
	return out
}

// TopByComposite returns the n highest-scoring stocks.
func TopByComposite(rows []ScoredStock, n int) []ScoredStock {
	out := make([]ScoredStock, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Composite > out[j].Composite })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func keep(rows []ScoredStock, pred func(ScoredStock) bool) []ScoredStock {
	out := []ScoredStock{}
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func anyBelow(rows []ScoredStock, threshold float64, get func(ScoredStock) float64) bool {
	for _, r := range rows {
		if get(r) < threshold {
			return true
		}
	}
	return false
}

func median(rows []ScoredStock, get func(ScoredStock) float64, include func(float64) bool) (float64, bool) {
	vals := []float64{}
	for _, r := range rows {
		v := get(r)
		if include == nil || include(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0, false
	}
	m, err := stats.Median(vals)
	if err != nil {
		return 0, false
	}
	return m, true
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"folio/internal/domain"
)

// DefaultRollingWindow matches the 20-day (roughly one trading month)
// window the dashboard renders.
const DefaultRollingWindow = 20

// RollingVolatility computes the annualized stdev of each asset's
// returns over a sliding window. Output series are aligned to the end
// of each window: entry 0 covers return rows [0, window).
func RollingVolatility(rt *domain.ReturnTable, window int) (map[domain.AssetID][]float64, error) {
	if window < 2 {
		return nil, fmt.Errorf("rolling window must be at least 2, got %d", window)
	}
	out := map[domain.AssetID][]float64{}
	for i, id := range rt.Assets {
		col := rt.Column(i)
		if len(col) < window {
			out[id] = []float64{}
			continue
		}
		series := make([]float64, 0, len(col)-window+1)
		for t := window; t <= len(col); t++ {
			stdev, err := stats.StandardDeviationSample(col[t-window : t])
			if err != nil {
				return nil, fmt.Errorf("rolling stdev for %s: %w", id, err)
			}
			series = append(series, stdev*math.Sqrt(TradingDays))
		}
		out[id] = series
	}
	return out, nil
}

// AssetCorrelation is one off-diagonal cell of the correlation matrix.
type AssetCorrelation struct {
	AssetOne    domain.AssetID
	AssetTwo    domain.AssetID
	Correlation float64
}

// Correlations computes pairwise return correlations for every asset
// pair, ordered by sorted asset id so output is stable.
func Correlations(rt *domain.ReturnTable) ([]AssetCorrelation, error) {
	if rt.NumAssets() < 2 {
		return nil, fmt.Errorf("cannot calculate correlation of fewer than 2 assets")
	}

	idx := make([]int, rt.NumAssets())
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return rt.Assets[idx[a]] < rt.Assets[idx[b]] })

	out := []AssetCorrelation{}
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			corr, err := stats.Correlation(rt.Column(idx[a]), rt.Column(idx[b]))
			if err != nil {
				return nil, fmt.Errorf("failed to calculate correlation: %w", err)
			}
			out = append(out, AssetCorrelation{
				AssetOne:    rt.Assets[idx[a]],
				AssetTwo:    rt.Assets[idx[b]],
				Correlation: corr,
			})
		}
	}
	return out, nil
}

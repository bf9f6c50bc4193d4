// Package resolver translates API requests into engine calls: fetch
// history through the provider, align it, run the computation, map the
// result onto wire types.
package resolver

import (
	"context"
	"fmt"
	"time"

	"folio/internal/domain"
	"folio/internal/prices"
)

const defaultLookbackDays = 365

type Resolver struct {
	Provider prices.Provider
}

func NewResolver(provider prices.Provider) Resolver {
	return Resolver{Provider: provider}
}

// fetchTable pulls and aligns history for the requested symbols over
// the trailing lookback. Per-symbol failures are tolerated as long as
// at least one symbol survives; the dropped ones are reported.
func (r Resolver) fetchTable(ctx context.Context, symbols []string, days int) (*domain.PriceTable, []string, error) {
	if len(symbols) == 0 {
		return nil, nil, fmt.Errorf("must provide at least one symbol")
	}
	if days <= 0 {
		days = defaultLookbackDays
	}

	formatted := make([]string, len(symbols))
	for i, s := range symbols {
		f := prices.FormatSymbol(s)
		if !prices.ValidateSymbol(f) {
			return nil, nil, fmt.Errorf("invalid symbol %q", s)
		}
		formatted[i] = f
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	bars, failures, err := prices.FetchAll(ctx, r.Provider, formatted, start, end)
	if err != nil {
		return nil, nil, err
	}

	series := map[domain.AssetID]domain.PriceSeries{}
	dropped := []string{}
	for _, symbol := range formatted {
		if symbolBars, ok := bars[symbol]; ok && len(symbolBars) > 0 {
			series[domain.AssetID(symbol)] = prices.ToSeries(symbolBars)
		} else {
			dropped = append(dropped, symbol)
		}
	}
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("no symbols could be retrieved (%d requested, %d failed)", len(symbols), len(failures))
	}

	table, err := domain.AlignSeries(series)
	if err != nil {
		return nil, nil, err
	}
	return table, dropped, nil
}

// orderedWeights maps request weights (in request symbol order) onto
// the aligned table's sorted asset order, renormalized. An absent
// weight vector means equal weight.
func orderedWeights(table *domain.PriceTable, symbols []string, weights []float64) (domain.Weights, error) {
	if len(weights) == 0 {
		return domain.EqualWeights(table.NumAssets()), nil
	}
	if len(weights) != len(symbols) {
		return nil, fmt.Errorf("got %d weights for %d symbols", len(weights), len(symbols))
	}
	bySymbol := map[domain.AssetID]float64{}
	for i, s := range symbols {
		bySymbol[domain.AssetID(prices.FormatSymbol(s))] = weights[i]
	}
	ordered := make([]float64, table.NumAssets())
	for i, id := range table.Assets {
		ordered[i] = bySymbol[id]
	}
	return domain.NewWeights(ordered), nil
}

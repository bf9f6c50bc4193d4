package resolver

import (
	"context"
	"fmt"
	"time"

	api "folio/api-types"
	"folio/internal/backtest"
	"folio/internal/prices"
)

func (r Resolver) Backtest(ctx context.Context, req api.BacktestRequest) (*api.BacktestResponse, error) {
	if len(req.Symbols) == 0 {
		return nil, fmt.Errorf("must provide at least one symbol")
	}

	end := time.Now()
	start := end.AddDate(-1, 0, 0)
	var err error
	if req.Start != "" {
		start, err = time.Parse("2006-01-02", req.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", req.Start, err)
		}
	}
	if req.End != "" {
		end, err = time.Parse("2006-01-02", req.End)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", req.End, err)
		}
	}

	symbols := make([]string, len(req.Symbols))
	for i, s := range req.Symbols {
		symbols[i] = prices.FormatSymbol(s)
	}
	weights := req.Weights
	if len(weights) == 0 {
		weights = make([]float64, len(symbols))
		for i := range weights {
			weights[i] = 1 / float64(len(symbols))
		}
	}

	result, err := backtest.Simulate(ctx, r.Provider, symbols, weights, start, end)
	if err != nil {
		return nil, err
	}

	out := &api.BacktestResponse{
		NAV:              result.NAV,
		BenchmarkNAV:     result.BenchmarkNAV,
		AnnualReturn:     result.AnnualReturn,
		AnnualVolatility: result.AnnualVolatility,
		SharpeRatio:      result.SharpeRatio,
		MaxDrawdown:      result.MaxDrawdown,
		CumulativeReturn: result.CumulativeReturn,
		Weights:          result.Weights,
	}
	for _, d := range result.Dates {
		out.Dates = append(out.Dates, d.Format("2006-01-02"))
	}
	for _, a := range result.Assets {
		out.Assets = append(out.Assets, string(a))
	}
	for _, a := range result.Dropped {
		out.Dropped = append(out.Dropped, string(a))
	}
	return out, nil
}

package resolver

import (
	"context"
	"fmt"

	api "folio/api-types"
	"folio/internal/domain"
	"folio/internal/optimize"
)

func (r Resolver) Optimize(ctx context.Context, req api.OptimizeRequest) (*api.OptimizeResponse, error) {
	table, dropped, err := r.fetchTable(ctx, req.Symbols, req.Days)
	if err != nil {
		return nil, err
	}
	rt := table.Returns()

	var result *optimize.Result
	switch req.Strategy {
	case "max-sharpe", "":
		result, err = optimize.MaxSharpe(rt)
	case "min-variance":
		result, err = optimize.MinVariance(rt)
	case "risk-parity":
		result, err = optimize.RiskParity(rt)
	case "equal":
		result = optimize.EqualWeight(rt)
	default:
		return nil, fmt.Errorf("unknown strategy %q", req.Strategy)
	}
	if err != nil {
		return nil, err
	}

	out := &api.OptimizeResponse{
		Weights:        weightsBySymbol(rt.Assets, result.Weights),
		ExpectedReturn: result.ExpectedReturn,
		Volatility:     result.Volatility,
		SharpeRatio:    result.SharpeRatio,
		Dropped:        dropped,
	}
	if result.RiskContributions != nil {
		out.RiskContributions = weightsBySymbol(rt.Assets, result.RiskContributions)
	}
	return out, nil
}

func weightsBySymbol(assets []domain.AssetID, values []float64) map[string]float64 {
	out := map[string]float64{}
	for i, id := range assets {
		out[string(id)] = values[i]
	}
	return out
}

package resolver

import (
	"context"

	api "folio/api-types"
	"folio/internal/metrics"
)

func (r Resolver) PortfolioMetrics(ctx context.Context, req api.MetricsRequest) (*api.MetricsResponse, error) {
	table, dropped, err := r.fetchTable(ctx, req.Symbols, req.Days)
	if err != nil {
		return nil, err
	}
	weights, err := orderedWeights(table, req.Symbols, req.Weights)
	if err != nil {
		return nil, err
	}

	m, err := metrics.Compute(table, weights, req.RiskFreeRate)
	if err != nil {
		return nil, err
	}

	return &api.MetricsResponse{
		AnnualReturn:     m.AnnualReturn,
		AnnualVolatility: m.AnnualVolatility,
		SharpeRatio:      m.SharpeRatio,
		SortinoRatio:     m.SortinoRatio,
		CalmarRatio:      m.CalmarRatio,
		MaxDrawdown:      m.MaxDrawdown,
		WinRate:          m.WinRate,
		ProfitLossRatio:  m.ProfitLossRatio,
		VaR95:            m.VaR95,
		CVaR95:           m.CVaR95,
		Cumulative:       m.Cumulative,
		Dropped:          dropped,
	}, nil
}

func (r Resolver) CorrelationMatrix(ctx context.Context, req api.CorrelationMatrixRequest) (*api.CorrelationMatrixResponse, error) {
	table, _, err := r.fetchTable(ctx, req.Symbols, req.Days)
	if err != nil {
		return nil, err
	}

	corrs, err := metrics.Correlations(table.Returns())
	if err != nil {
		return nil, err
	}

	out := []api.Correlation{}
	for _, c := range corrs {
		out = append(out, api.Correlation{
			AssetOne:    string(c.AssetOne),
			AssetTwo:    string(c.AssetTwo),
			Correlation: c.Correlation,
		})
	}
	return &api.CorrelationMatrixResponse{Correlations: out}, nil
}

package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	api "folio/api-types"
	"folio/internal/prices"
)

// stubProvider serves 40 rising bars for any symbol not in the fail
// set, with a different base price per symbol length so series differ.
type stubProvider struct {
	fail map[string]bool
}

func (s *stubProvider) DailyPrices(ctx context.Context, symbol string, start, end time.Time) ([]prices.Bar, error) {
	if s.fail[symbol] {
		return nil, errors.New("symbol unavailable")
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	price := 100.0 * float64(len(symbol))
	out := make([]prices.Bar, 40)
	for i := range out {
		out[i] = prices.Bar{
			Symbol: symbol,
			Date:   base.AddDate(0, 0, i),
			Close:  decimal.NewFromFloat(price),
		}
		price *= 1.001 + 0.0005*float64(len(symbol))
	}
	return out, nil
}

func (s *stubProvider) LatestQuote(ctx context.Context, symbol string) (*prices.Quote, error) {
	return nil, errors.New("not implemented")
}

func TestPortfolioMetrics(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(&stubProvider{})

	t.Run("equal weight default", func(t *testing.T) {
		out, err := r.PortfolioMetrics(ctx, api.MetricsRequest{
			Symbols: []string{"AAPL", "MSFT"},
		})
		require.NoError(t, err)
		require.Greater(t, out.AnnualReturn, 0.0)
		require.Len(t, out.Cumulative, 39)
	})

	t.Run("explicit weights must match symbols", func(t *testing.T) {
		_, err := r.PortfolioMetrics(ctx, api.MetricsRequest{
			Symbols: []string{"AAPL", "MSFT"},
			Weights: []float64{1},
		})
		require.Error(t, err)
	})

	t.Run("failed symbols reported as dropped", func(t *testing.T) {
		r := NewResolver(&stubProvider{fail: map[string]bool{"BAD": true}})

		out, err := r.PortfolioMetrics(ctx, api.MetricsRequest{
			Symbols: []string{"AAPL", "MSFT", "BAD"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"BAD"}, out.Dropped)
	})

	t.Run("invalid symbol rejected", func(t *testing.T) {
		_, err := r.PortfolioMetrics(ctx, api.MetricsRequest{
			Symbols: []string{"NOT A SYMBOL"},
		})
		require.Error(t, err)
	})

	t.Run("no symbols", func(t *testing.T) {
		_, err := r.PortfolioMetrics(ctx, api.MetricsRequest{})
		require.Error(t, err)
	})
}

func TestOptimizeResolver(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(&stubProvider{})

	t.Run("equal strategy", func(t *testing.T) {
		out, err := r.Optimize(ctx, api.OptimizeRequest{
			Symbols:  []string{"AAPL", "MSFT", "GOOGL"},
			Strategy: "equal",
		})
		require.NoError(t, err)
		require.Len(t, out.Weights, 3)
		require.InDelta(t, 1.0/3.0, out.Weights["AAPL"], 1e-9)
	})

	t.Run("failed symbols reported as dropped", func(t *testing.T) {
		r := NewResolver(&stubProvider{fail: map[string]bool{"BAD": true}})

		out, err := r.Optimize(ctx, api.OptimizeRequest{
			Symbols:  []string{"AAPL", "MSFT", "BAD"},
			Strategy: "equal",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"BAD"}, out.Dropped)
		require.Len(t, out.Weights, 2)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := r.Optimize(ctx, api.OptimizeRequest{
			Symbols:  []string{"AAPL", "MSFT"},
			Strategy: "magic",
		})
		require.Error(t, err)
	})
}

func TestCorrelationMatrixResolver(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(&stubProvider{})

	out, err := r.CorrelationMatrix(ctx, api.CorrelationMatrixRequest{
		Symbols: []string{"AAPL", "MSFT", "SPY"},
	})
	require.NoError(t, err)
	require.Len(t, out.Correlations, 3)
}

func TestFetchTableDropsFailures(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(&stubProvider{fail: map[string]bool{"BAD": true}})

	table, dropped, err := r.fetchTable(ctx, []string{"AAPL", "BAD"}, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"BAD"}, dropped)
	require.Equal(t, 1, table.NumAssets())
}

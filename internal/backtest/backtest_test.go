package backtest

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	folio_errors "folio/internal"
	"folio/internal/domain"
	"folio/internal/prices"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func barsFor(symbol string, closes []float64) []prices.Bar {
	out := make([]prices.Bar, len(closes))
	for i, c := range closes {
		out[i] = prices.Bar{
			Symbol: symbol,
			Date:   testStart.AddDate(0, 0, i),
			Close:  decimal.NewFromFloat(c),
		}
	}
	return out
}

func linearCloses(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

func TestSimulate(t *testing.T) {
	ctx := context.Background()
	end := testStart.AddDate(0, 0, 30)

	t.Run("drops unretrievable asset and renormalizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)

		provider.EXPECT().
			DailyPrices(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
			Return(barsFor("AAPL", linearCloses(100, 12)), nil)
		provider.EXPECT().
			DailyPrices(gomock.Any(), "BAD", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no data for symbol"))
		provider.EXPECT().
			DailyPrices(gomock.Any(), "MSFT", gomock.Any(), gomock.Any()).
			Return(barsFor("MSFT", linearCloses(300, 12)), nil)
		provider.EXPECT().
			DailyPrices(gomock.Any(), prices.BenchmarkSymbol, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("benchmark down"))

		out, err := Simulate(ctx, provider, []string{"AAPL", "BAD", "MSFT"}, []float64{0.5, 0.3, 0.2}, testStart, end)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]domain.AssetID{"AAPL", "MSFT"}, out.Assets))
		require.Equal(t, "", cmp.Diff([]domain.AssetID{"BAD"}, out.Dropped))

		// surviving weights rescale to unit sum, keeping proportions
		require.InDelta(t, 1.0, out.Weights.Sum(), 1e-9)
		require.InDelta(t, 0.5/0.7, out.Weights[0], 1e-9)
		require.InDelta(t, 0.2/0.7, out.Weights[1], 1e-9)

		require.Len(t, out.NAV, 11)
		require.Greater(t, out.CumulativeReturn, 0.0)
	})

	t.Run("too few trading days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)

		provider.EXPECT().
			DailyPrices(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
			Return(barsFor("AAPL", linearCloses(100, 5)), nil)

		_, err := Simulate(ctx, provider, []string{"AAPL"}, []float64{1}, testStart, end)
		require.Error(t, err)
		require.ErrorAs(t, err, &folio_errors.ErrInsufficientData{})
	})

	t.Run("flat prices stay well-defined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)

		flat := make([]float64, 15)
		for i := range flat {
			flat[i] = 100
		}
		provider.EXPECT().
			DailyPrices(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
			Return(barsFor("AAPL", flat), nil)
		provider.EXPECT().
			DailyPrices(gomock.Any(), prices.BenchmarkSymbol, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("benchmark down"))

		out, err := Simulate(ctx, provider, []string{"AAPL"}, []float64{1}, testStart, end)
		require.NoError(t, err)

		require.Greater(t, out.AnnualVolatility, 0.0)
		require.False(t, math.IsNaN(out.SharpeRatio))
		require.False(t, math.IsNaN(out.MaxDrawdown))
		// the nudge is far below anything a caller would notice
		require.InDelta(t, 0.0, out.CumulativeReturn, 1e-4)
	})

	t.Run("benchmark curve tracks the index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)

		provider.EXPECT().
			DailyPrices(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
			Return(barsFor("AAPL", linearCloses(100, 12)), nil)
		provider.EXPECT().
			DailyPrices(gomock.Any(), prices.BenchmarkSymbol, gomock.Any(), gomock.Any()).
			Return(barsFor(prices.BenchmarkSymbol, linearCloses(4000, 12)), nil)

		out, err := Simulate(ctx, provider, []string{"AAPL"}, []float64{1}, testStart, end)
		require.NoError(t, err)

		require.Len(t, out.BenchmarkNAV, len(out.NAV))
		// index went 4001 -> 4011 over the return window
		last := out.BenchmarkNAV[len(out.BenchmarkNAV)-1]
		require.InDelta(t, 4011.0/4001.0, last, 1e-9)
	})

	t.Run("weight count must match symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)

		_, err := Simulate(ctx, provider, []string{"AAPL", "MSFT"}, []float64{1}, testStart, end)
		require.Error(t, err)
		require.ErrorAs(t, err, &folio_errors.ErrShapeMismatch{})
	})

	t.Run("all assets unretrievable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := NewMockProvider(ctrl)

		provider.EXPECT().
			DailyPrices(gomock.Any(), "AAPL", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no data"))

		_, err := Simulate(ctx, provider, []string{"AAPL"}, []float64{1}, testStart, end)
		require.Error(t, err)
	})
}

package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func days(offsets ...int) []time.Time {
	out := make([]time.Time, len(offsets))
	for i, o := range offsets {
		out[i] = day(o)
	}
	return out
}

func TestPriceSeriesValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := PriceSeries{Dates: days(0, 1, 2), Prices: []float64{100, 101, 102}}
		require.NoError(t, s.Validate())
	})

	t.Run("length mismatch", func(t *testing.T) {
		s := PriceSeries{Dates: days(0, 1), Prices: []float64{100}}
		require.Error(t, s.Validate())
	})

	t.Run("duplicate date", func(t *testing.T) {
		s := PriceSeries{Dates: days(0, 1, 1), Prices: []float64{100, 101, 102}}
		require.Error(t, s.Validate())
	})

	t.Run("non-positive price", func(t *testing.T) {
		s := PriceSeries{Dates: days(0, 1), Prices: []float64{100, 0}}
		require.Error(t, s.Validate())
	})
}

func TestAlignSeries(t *testing.T) {
	t.Run("union with forward fill", func(t *testing.T) {
		series := map[AssetID]PriceSeries{
			"AAPL": {Dates: days(0, 1, 2), Prices: []float64{100, 101, 102}},
			"MSFT": {Dates: days(0, 2), Prices: []float64{300, 310}},
		}

		table, err := AlignSeries(series)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]AssetID{"AAPL", "MSFT"}, table.Assets))
		require.Equal(t, "", cmp.Diff(days(0, 1, 2), table.Dates))
		// day 1 has no MSFT print, so it carries day 0's close
		require.Equal(t, "", cmp.Diff([][]float64{
			{100, 300},
			{101, 300},
			{102, 310},
		}, table.Prices))
	})

	t.Run("drops rows before late starter", func(t *testing.T) {
		series := map[AssetID]PriceSeries{
			"AAPL": {Dates: days(0, 1, 2), Prices: []float64{100, 101, 102}},
			"IPO":  {Dates: days(2), Prices: []float64{50}},
		}

		table, err := AlignSeries(series)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(days(2), table.Dates))
		require.Equal(t, "", cmp.Diff([][]float64{{102, 50}}, table.Prices))
	})

	t.Run("asset order is sorted", func(t *testing.T) {
		series := map[AssetID]PriceSeries{
			"ZM":   {Dates: days(0), Prices: []float64{60}},
			"AAPL": {Dates: days(0), Prices: []float64{100}},
			"MSFT": {Dates: days(0), Prices: []float64{300}},
		}

		table, err := AlignSeries(series)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]AssetID{"AAPL", "MSFT", "ZM"}, table.Assets))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := AlignSeries(map[AssetID]PriceSeries{})
		require.Error(t, err)
	})

	t.Run("invalid series surfaces asset", func(t *testing.T) {
		series := map[AssetID]PriceSeries{
			"BAD": {Dates: days(0, 1), Prices: []float64{100, -1}},
		}
		_, err := AlignSeries(series)
		require.Error(t, err)
		require.Contains(t, err.Error(), "BAD")
	})
}

func TestWindow(t *testing.T) {
	table := &PriceTable{
		Assets: []AssetID{"AAPL"},
		Dates:  days(0, 1, 2, 3, 4),
		Prices: [][]float64{{100}, {101}, {102}, {103}, {104}},
	}

	out := table.Window(day(1), day(3))
	require.Equal(t, "", cmp.Diff(days(1, 2, 3), out.Dates))
	require.Equal(t, "", cmp.Diff([][]float64{{101}, {102}, {103}}, out.Prices))
}

func TestReturns(t *testing.T) {
	table := &PriceTable{
		Assets: []AssetID{"AAPL", "MSFT"},
		Dates:  days(0, 1, 2),
		Prices: [][]float64{
			{100, 200},
			{110, 190},
			{121, 190},
		},
	}

	rt := table.Returns()
	require.Equal(t, 2, rt.NumRows())
	require.Equal(t, "", cmp.Diff(days(1, 2), rt.Dates))
	require.InDelta(t, 0.10, rt.Returns[0][0], 1e-12)
	require.InDelta(t, -0.05, rt.Returns[0][1], 1e-12)
	require.InDelta(t, 0.10, rt.Returns[1][0], 1e-12)
	require.InDelta(t, 0.0, rt.Returns[1][1], 1e-12)
}

func TestPortfolio(t *testing.T) {
	rt := &ReturnTable{
		Assets: []AssetID{"AAPL", "MSFT"},
		Dates:  days(1, 2),
		Returns: [][]float64{
			{0.10, -0.05},
			{0.02, 0.04},
		},
	}

	out := rt.Portfolio(Weights{0.5, 0.5})
	require.InDelta(t, 0.025, out[0], 1e-12)
	require.InDelta(t, 0.03, out[1], 1e-12)
}

func TestColumn(t *testing.T) {
	rt := &ReturnTable{
		Assets: []AssetID{"AAPL", "MSFT"},
		Returns: [][]float64{
			{0.1, 0.2},
			{0.3, 0.4},
		},
	}
	require.Equal(t, "", cmp.Diff([]float64{0.2, 0.4}, rt.Column(1)))
}

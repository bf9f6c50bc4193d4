package optimize

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

// syntheticReturns builds a deterministic return table with per-asset
// volatility scaling with the column index, so asset 0 is always the
// quietest.
func syntheticReturns(assets []domain.AssetID, rows int, seed uint64) *domain.ReturnTable {
	out := &domain.ReturnTable{Assets: assets}
	state := seed
	next := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>33)/float64(1<<31) - 0.5
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for t := 0; t < rows; t++ {
		row := make([]float64, len(assets))
		for j := range assets {
			scale := 0.01 * float64(j+1)
			row[j] = next()*scale + 0.0005
		}
		out.Dates = append(out.Dates, base.AddDate(0, 0, t+1))
		out.Returns = append(out.Returns, row)
	}
	return out
}

func requireSimplex(t *testing.T, w domain.Weights) {
	t.Helper()
	for i, v := range w {
		require.GreaterOrEqual(t, v, 0.0, "weight %d is negative", i)
	}
	require.InDelta(t, 1.0, w.Sum(), 1e-6)
}

func TestAnnualizedMoments(t *testing.T) {
	t.Run("scales daily moments", func(t *testing.T) {
		rt := &domain.ReturnTable{
			Assets: []domain.AssetID{"AAPL"},
			Returns: [][]float64{
				{0.01}, {0.03},
			},
		}

		mu, sigma, err := AnnualizedMoments(rt)
		require.NoError(t, err)
		require.InDelta(t, 0.02*252, mu[0], 1e-9)
		// sample variance of {0.01, 0.03} is 2e-4
		require.InDelta(t, 2e-4*252, sigma.At(0, 0), 1e-9)
	})

	t.Run("no assets", func(t *testing.T) {
		_, _, err := AnnualizedMoments(&domain.ReturnTable{})
		require.Error(t, err)
	})

	t.Run("too few rows", func(t *testing.T) {
		rt := &domain.ReturnTable{
			Assets:  []domain.AssetID{"AAPL"},
			Returns: [][]float64{{0.01}},
		}
		_, _, err := AnnualizedMoments(rt)
		require.Error(t, err)
	})
}

func TestMaxSharpe(t *testing.T) {
	rt := syntheticReturns([]domain.AssetID{"AAPL", "MSFT", "GOOGL"}, 120, 7)

	out, err := MaxSharpe(rt)
	require.NoError(t, err)

	requireSimplex(t, out.Weights)
	require.Greater(t, out.Volatility, 0.0)
	require.InDelta(t, out.ExpectedReturn/out.Volatility, out.SharpeRatio, 1e-9)

	// the solution should be at least as good as naive 1/N
	naive := EqualWeight(rt)
	require.GreaterOrEqual(t, out.SharpeRatio+1e-6, naive.SharpeRatio)
}

func TestMinVariance(t *testing.T) {
	rt := syntheticReturns([]domain.AssetID{"CALM", "WILD"}, 200, 11)

	out, err := MinVariance(rt)
	require.NoError(t, err)

	requireSimplex(t, out.Weights)
	// asset 0 has half of asset 1's volatility, so the minimum
	// variance portfolio concentrates there
	require.Greater(t, out.Weights[0], out.Weights[1])

	naive := EqualWeight(rt)
	require.LessOrEqual(t, out.Volatility, naive.Volatility+1e-9)
}

func TestEqualWeight(t *testing.T) {
	t.Run("always 1/N", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 10} {
			assets := make([]domain.AssetID, n)
			for i := range assets {
				assets[i] = domain.AssetID(rune('A' + i))
			}
			rt := syntheticReturns(assets, 50, 3)

			out := EqualWeight(rt)
			require.Equal(t, "", cmp.Diff(domain.EqualWeights(n), out.Weights))
		}
	})

	t.Run("degenerate table still returns weights", func(t *testing.T) {
		rt := &domain.ReturnTable{
			Assets:  []domain.AssetID{"AAPL", "MSFT"},
			Returns: [][]float64{{0.01, 0.02}},
		}

		out := EqualWeight(rt)
		require.Equal(t, "", cmp.Diff(domain.EqualWeights(2), out.Weights))
		require.Equal(t, 0.0, out.Volatility)
		require.Equal(t, 0.0, out.ExpectedReturn)
	})
}

func TestRiskParity(t *testing.T) {
	t.Run("contributions equalize", func(t *testing.T) {
		rt := syntheticReturns([]domain.AssetID{"CALM", "MID", "WILD"}, 200, 17)

		out, err := RiskParity(rt)
		require.NoError(t, err)

		requireSimplex(t, out.Weights)
		require.Len(t, out.RiskContributions, 3)

		var total float64
		for _, rc := range out.RiskContributions {
			total += rc
			require.InDelta(t, 1.0/3.0, rc, 0.05)
		}
		require.InDelta(t, 1.0, total, 1e-6)

		// lower volatility earns a larger allocation
		require.Greater(t, out.Weights[0], out.Weights[2])
	})

	t.Run("single asset", func(t *testing.T) {
		rt := syntheticReturns([]domain.AssetID{"AAPL"}, 50, 5)

		out, err := RiskParity(rt)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(domain.Weights{1}, out.Weights))
		require.Equal(t, "", cmp.Diff([]float64{1}, out.RiskContributions))
	})
}

func TestSolverWideUniverses(t *testing.T) {
	// Nelder-Mead stalls as the dimension grows, pushing the solver
	// onto its gradient-based fallback. All strategies must still land.
	for _, n := range []int{2, 5, 10, 30} {
		assets := make([]domain.AssetID, n)
		for i := range assets {
			assets[i] = domain.AssetID(rune('A' + i))
		}
		rt := syntheticReturns(assets, 260, 31)

		sharpe, err := MaxSharpe(rt)
		require.NoError(t, err, "max sharpe, %d assets", n)
		requireSimplex(t, sharpe.Weights)

		minVar, err := MinVariance(rt)
		require.NoError(t, err, "min variance, %d assets", n)
		requireSimplex(t, minVar.Weights)

		parity, err := RiskParity(rt)
		require.NoError(t, err, "risk parity, %d assets", n)
		requireSimplex(t, parity.Weights)
	}
}

func TestFrontier(t *testing.T) {
	rt := syntheticReturns([]domain.AssetID{"AAPL", "MSFT"}, 100, 23)

	t.Run("deterministic for a seed", func(t *testing.T) {
		a, err := Frontier(rt, 50, 42)
		require.NoError(t, err)
		require.Len(t, a, 50)

		b, err := Frontier(rt, 50, 42)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(a, b))
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		_, err := Frontier(rt, 0, 42)
		require.Error(t, err)
	})
}

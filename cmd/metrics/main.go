package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"folio/internal/cache"
	"folio/internal/domain"
	"folio/internal/metrics"
	"folio/internal/prices"
	"folio/internal/util"
	"log"
	"strconv"
	"strings"
	"time"
)

func main() {
	symbolsFlag := flag.String("symbols", "AAPL,MSFT,GOOGL", "comma-separated ticker symbols")
	weightsFlag := flag.String("weights", "", "comma-separated weights; equal weight if empty")
	days := flag.Int("days", 365, "lookback window in calendar days")
	riskFree := flag.Float64("risk-free", 0.03, "annual risk-free rate")
	flag.Parse()

	symbols, err := parseSymbols(*symbolsFlag)
	if err != nil {
		log.Fatal(err)
	}

	weights, err := parseWeights(*weightsFlag, len(symbols))
	if err != nil {
		log.Fatal(err)
	}
	// Compute expects weights in the table's sorted asset order.
	weightBySymbol := map[string]float64{}
	for i, s := range symbols {
		weightBySymbol[s] = weights[i]
	}

	ctx := context.Background()
	provider := cache.NewProvider(prices.NewYahooClient(), cache.NewMemory())

	end := time.Now()
	start := end.AddDate(0, 0, -*days)
	bars, failed, err := prices.FetchAll(ctx, provider, symbols, start, end)
	if err != nil {
		log.Fatal(err)
	}
	for _, symbol := range util.SortedMapKeys(failed) {
		log.Printf("skipping %s: %v", symbol, failed[symbol])
	}

	series := map[domain.AssetID]domain.PriceSeries{}
	for symbol, symbolBars := range bars {
		series[domain.AssetID(symbol)] = prices.ToSeries(symbolBars)
	}
	table, err := domain.AlignSeries(series)
	if err != nil {
		log.Fatal(err)
	}

	ordered := make([]float64, len(table.Assets))
	for i, asset := range table.Assets {
		ordered[i] = weightBySymbol[string(asset)]
	}

	out, err := metrics.Compute(table, domain.NewWeights(ordered), *riskFree)
	if err != nil {
		log.Fatal(err)
	}

	bytes, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(bytes))
}

func parseSymbols(s string) ([]string, error) {
	seen := util.NewSet()
	symbols := []string{}
	for _, raw := range strings.Split(s, ",") {
		formatted := prices.FormatSymbol(strings.ToUpper(strings.TrimSpace(raw)))
		if !prices.ValidateSymbol(formatted) {
			return nil, fmt.Errorf("invalid symbol %q", raw)
		}
		if seen.Contains(formatted) {
			continue
		}
		seen.Add(formatted)
		symbols = append(symbols, formatted)
	}
	return symbols, nil
}

func parseWeights(s string, n int) (domain.Weights, error) {
	if s == "" {
		return domain.EqualWeights(n), nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("got %d weights for %d symbols", len(parts), n)
	}
	raw := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		raw[i] = f
	}
	return domain.NewWeights(raw), nil
}

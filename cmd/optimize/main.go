package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"folio/internal/cache"
	"folio/internal/domain"
	"folio/internal/optimize"
	"folio/internal/prices"
	"folio/internal/util"
	"log"
	"strings"
	"time"
)

type output struct {
	Strategy          string             `json:"strategy"`
	Weights           map[string]float64 `json:"weights"`
	ExpectedReturn    float64            `json:"expectedReturn"`
	Volatility        float64            `json:"volatility"`
	SharpeRatio       float64            `json:"sharpeRatio"`
	RiskContributions map[string]float64 `json:"riskContributions,omitempty"`
}

func main() {
	symbolsFlag := flag.String("symbols", "AAPL,MSFT,GOOGL,AMZN", "comma-separated ticker symbols")
	strategy := flag.String("strategy", "max-sharpe", "max-sharpe, min-variance, risk-parity or equal")
	days := flag.Int("days", 365, "lookback window in calendar days")
	frontierPoints := flag.Int("frontier", 0, "if > 0, also sample this many random portfolios")
	flag.Parse()

	symbols := []string{}
	seen := util.NewSet()
	for _, raw := range strings.Split(*symbolsFlag, ",") {
		s := prices.FormatSymbol(strings.ToUpper(strings.TrimSpace(raw)))
		if !prices.ValidateSymbol(s) {
			log.Fatalf("invalid symbol %q", raw)
		}
		if !seen.Contains(s) {
			seen.Add(s)
			symbols = append(symbols, s)
		}
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
	rt := table.Returns()

	result, err := run(*strategy, rt)
	if err != nil {
		log.Fatal(err)
	}

	out := output{
		Strategy:       *strategy,
		Weights:        map[string]float64{},
		ExpectedReturn: result.ExpectedReturn,
		Volatility:     result.Volatility,
		SharpeRatio:    result.SharpeRatio,
	}
	for i, asset := range rt.Assets {
		out.Weights[string(asset)] = result.Weights[i]
	}
	if result.RiskContributions != nil {
		out.RiskContributions = map[string]float64{}
		for i, asset := range rt.Assets {
			out.RiskContributions[string(asset)] = result.RiskContributions[i]
		}
	}

	bytes, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(bytes))

	if *frontierPoints > 0 {
		points, err := optimize.Frontier(rt, *frontierPoints, time.Now().UnixNano())
		if err != nil {
			log.Fatal(err)
		}
		bytes, err = json.MarshalIndent(points, "", "    ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(bytes))
	}
}

func run(strategy string, rt *domain.ReturnTable) (*optimize.Result, error) {
	switch strategy {
	case "max-sharpe":
		return optimize.MaxSharpe(rt)
	case "min-variance":
		return optimize.MinVariance(rt)
	case "risk-parity":
		return optimize.RiskParity(rt)
	case "equal":
		return optimize.EqualWeight(rt), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}

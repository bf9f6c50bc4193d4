package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"folio/internal/backtest"
	"folio/internal/cache"
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
	startFlag := flag.String("start", "", "start date YYYY-MM-DD; defaults to a year ago")
	endFlag := flag.String("end", "", "end date YYYY-MM-DD; defaults to today")
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

	weights := make([]float64, len(symbols))
	if *weightsFlag == "" {
		for i := range weights {
			weights[i] = 1.0 / float64(len(symbols))
		}
	} else {
		parts := strings.Split(*weightsFlag, ",")
		if len(parts) != len(symbols) {
			log.Fatalf("got %d weights for %d symbols", len(parts), len(symbols))
		}
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				log.Fatalf("invalid weight %q: %v", p, err)
			}
			weights[i] = f
		}
	}

	end := time.Now()
	start := end.AddDate(-1, 0, 0)
	var err error
	if *startFlag != "" {
		start, err = time.Parse("2006-01-02", *startFlag)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *endFlag != "" {
		end, err = time.Parse("2006-01-02", *endFlag)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	provider := cache.NewProvider(prices.NewYahooClient(), cache.NewMemory())

	result, err := backtest.Simulate(ctx, provider, symbols, weights, start, end)
	if err != nil {
		log.Fatal(err)
	}

	bytes, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(bytes))
}

package domain

import (
	"fmt"
	"sort"
	"time"
)

// AssetID is an opaque identifier for a tradable asset (ticker symbol,
// index code, etc). Keeping it typed stops symbol strings from getting
// mixed up with other string-y things at call sites.
type AssetID string

// PriceSeries is one asset's daily closing prices. Dates must be
// strictly increasing with no duplicates, prices positive.
type PriceSeries struct {
	Dates  []time.Time
	Prices []float64
}

func (s PriceSeries) Len() int {
	return len(s.Dates)
}

func (s PriceSeries) Validate() error {
	if len(s.Dates) != len(s.Prices) {
		return fmt.Errorf("price series has %d dates but %d prices", len(s.Dates), len(s.Prices))
	}
	for i := range s.Dates {
		if i > 0 && !s.Dates[i].After(s.Dates[i-1]) {
			return fmt.Errorf("price series dates not strictly increasing at index %d (%s)", i, s.Dates[i].Format("2006-01-02"))
		}
		if s.Prices[i] <= 0 {
			return fmt.Errorf("non-positive price %f at %s", s.Prices[i], s.Dates[i].Format("2006-01-02"))
		}
	}
	return nil
}

// PriceTable is a set of price series aligned on a shared date axis.
// Rows are trading days, columns follow Assets order.
type PriceTable struct {
	Assets []AssetID
	Dates  []time.Time
	Prices [][]float64
}

func (t *PriceTable) NumAssets() int {
	return len(t.Assets)
}

func (t *PriceTable) NumRows() int {
	return len(t.Dates)
}

// AlignSeries merges per-asset series onto the union of their trading
// days. Gaps are forward-filled from the last observed price; rows
// before an asset's first observation are dropped entirely, so every
// remaining row has a price for every asset. Assets come out in sorted
// order so the table is deterministic regardless of map iteration.
func AlignSeries(series map[AssetID]PriceSeries) (*PriceTable, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("cannot align empty set of price series")
	}

	assets := make([]AssetID, 0, len(series))
	for id := range series {
		if err := series[id].Validate(); err != nil {
			return nil, fmt.Errorf("invalid series for %s: %w", id, err)
		}
		assets = append(assets, id)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })

	dateSet := map[int64]time.Time{}
	for _, id := range assets {
		for _, d := range series[id].Dates {
			dateSet[d.Unix()] = d
		}
	}
	dates := make([]time.Time, 0, len(dateSet))
	for _, d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	cursors := make([]int, len(assets))
	last := make([]float64, len(assets))
	started := make([]bool, len(assets))

	outDates := []time.Time{}
	outPrices := [][]float64{}
	for _, d := range dates {
		complete := true
		row := make([]float64, len(assets))
		for i, id := range assets {
			s := series[id]
			for cursors[i] < s.Len() && !s.Dates[cursors[i]].After(d) {
				last[i] = s.Prices[cursors[i]]
				started[i] = true
				cursors[i]++
			}
			if !started[i] {
				complete = false
				break
			}
			row[i] = last[i]
		}
		if complete {
			outDates = append(outDates, d)
			outPrices = append(outPrices, row)
		}
	}

	if len(outDates) == 0 {
		return nil, fmt.Errorf("no overlapping trading days across %d series", len(assets))
	}

	return &PriceTable{Assets: assets, Dates: outDates, Prices: outPrices}, nil
}

// Window restricts the table to rows in [start, end] inclusive.
func (t *PriceTable) Window(start, end time.Time) *PriceTable {
	out := &PriceTable{Assets: t.Assets}
	for i, d := range t.Dates {
		if d.Before(start) || d.After(end) {
			continue
		}
		out.Dates = append(out.Dates, d)
		out.Prices = append(out.Prices, t.Prices[i])
	}
	return out
}

// ReturnTable holds simple daily percentage returns. The first price
// row has no return and is dropped, so a ReturnTable always has one
// fewer row than the table it came from.
type ReturnTable struct {
	Assets  []AssetID
	Dates   []time.Time
	Returns [][]float64
}

// Returns derives simple returns, price[t]/price[t-1] - 1, per asset.
func (t *PriceTable) Returns() *ReturnTable {
	out := &ReturnTable{Assets: t.Assets}
	for i := 1; i < len(t.Prices); i++ {
		row := make([]float64, len(t.Assets))
		for j := range t.Assets {
			row[j] = t.Prices[i][j]/t.Prices[i-1][j] - 1
		}
		out.Dates = append(out.Dates, t.Dates[i])
		out.Returns = append(out.Returns, row)
	}
	return out
}

func (r *ReturnTable) NumAssets() int {
	return len(r.Assets)
}

func (r *ReturnTable) NumRows() int {
	return len(r.Returns)
}

// Column extracts one asset's return series.
func (r *ReturnTable) Column(i int) []float64 {
	out := make([]float64, len(r.Returns))
	for t := range r.Returns {
		out[t] = r.Returns[t][i]
	}
	return out
}

// Portfolio collapses the table into a single return series using the
// given weights: the weighted sum of per-asset returns at each row.
func (r *ReturnTable) Portfolio(w Weights) []float64 {
	out := make([]float64, len(r.Returns))
	for t, row := range r.Returns {
		var sum float64
		for j, ret := range row {
			sum += ret * w[j]
		}
		out[t] = sum
	}
	return out
}

package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches daily history and quotes from the public Yahoo
// Finance chart API. No API key required, but the endpoint rejects
// default Go user agents, hence the curl disguise.
type YahooClient struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (c *YahooClient) DailyPrices(ctx context.Context, symbol string, start, end time.Time) ([]Bar, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.baseURL(), symbol, start.Unix(), end.Unix())

	chart, err := c.fetchChart(ctx, url, symbol)
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close

	bars := []Bar{}
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] <= 0 {
			// Halted or unpriced sessions come back as zeros.
			continue
		}
		bars = append(bars, Bar{
			Symbol: symbol,
			Date:   time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Close:  decimal.NewFromFloat(closes[i]),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no usable bars for %s between %s and %s",
			symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return bars, nil
}

func (c *YahooClient) LatestQuote(ctx context.Context, symbol string) (*Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", c.baseURL(), symbol)

	chart, err := c.fetchChart(ctx, url, symbol)
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	meta := result.Meta
	if meta.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("no market price for %s", symbol)
	}

	price := decimal.NewFromFloat(meta.RegularMarketPrice)
	prevClose := decimal.NewFromFloat(meta.ChartPreviousClose)
	q := &Quote{
		Symbol:        symbol,
		Price:         price,
		PreviousClose: prevClose,
		AsOf:          time.Unix(meta.RegularMarketTime, 0).UTC(),
	}
	if prevClose.IsPositive() {
		q.Change = price.Sub(prevClose)
		q.ChangePercent = q.Change.Div(prevClose).Mul(decimal.NewFromInt(100))
	}
	if len(result.Indicators.Quote) > 0 {
		bar := result.Indicators.Quote[0]
		if len(bar.Open) > 0 {
			q.Open = decimal.NewFromFloat(bar.Open[0])
		}
		if len(bar.High) > 0 {
			q.High = decimal.NewFromFloat(bar.High[0])
		}
		if len(bar.Low) > 0 {
			q.Low = decimal.NewFromFloat(bar.Low[0])
		}
		if len(bar.Volume) > 0 {
			q.Volume = bar.Volume[0]
		}
	}
	return q, nil
}

func (c *YahooClient) fetchChart(ctx context.Context, url, symbol string) (*yahooChartResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "curl/8")

	response, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited fetching %s", symbol)
	}
	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return nil, fmt.Errorf("unexpected status %d fetching %s: %s", response.StatusCode, symbol, string(body))
	}

	var chart yahooChartResponse
	if err := json.NewDecoder(response.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("could not parse chart response for %s: %w", symbol, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %s: %s (%s)", symbol, chart.Chart.Error.Description, chart.Chart.Error.Code)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}
	return &chart, nil
}

func (c *YahooClient) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultYahooBaseURL
}

func (c *YahooClient) httpClient() *http.Client {
	if c.HttpClient != nil {
		return c.HttpClient
	}
	return http.DefaultClient
}

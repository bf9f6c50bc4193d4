package prices

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"folio/internal/domain"
)

// Bar is one daily close for one symbol. Prices stay decimal at this
// boundary; they are converted to float64 once inside the analytics
// layer, where everything is a statistical approximation anyway.
type Bar struct {
	Symbol string
	Date   time.Time
	Close  decimal.Decimal
}

// Quote is a point-in-time snapshot for one symbol.
type Quote struct {
	Symbol        string
	Price         decimal.Decimal
	PreviousClose decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	Open          decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
	Volume        int64
	AsOf          time.Time
}

// Provider supplies price history and current quotes. Implementations
// must be safe for concurrent use.
type Provider interface {
	DailyPrices(ctx context.Context, symbol string, start, end time.Time) ([]Bar, error)
	LatestQuote(ctx context.Context, symbol string) (*Quote, error)
}

// ToSeries converts bars to the engine's float64 price series. Bars
// must already be date-ascending, which every Provider guarantees.
func ToSeries(bars []Bar) domain.PriceSeries {
	s := domain.PriceSeries{
		Dates:  make([]time.Time, len(bars)),
		Prices: make([]float64, len(bars)),
	}
	for i, b := range bars {
		s.Dates[i] = b.Date
		s.Prices[i] = b.Close.InexactFloat64()
	}
	return s
}

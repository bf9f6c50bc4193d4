package cache

import (
	"context"
	"fmt"
	"time"

	"folio/internal/prices"
)

const (
	historyTTL = time.Hour
	quoteTTL   = time.Minute
)

// Provider decorates a prices.Provider with TTL caching. History gets
// an hour, quotes a minute, mirroring how often each actually changes.
type Provider struct {
	Upstream prices.Provider
	Cache    Cache
}

func NewProvider(upstream prices.Provider, cache Cache) *Provider {
	return &Provider{Upstream: upstream, Cache: cache}
}

func (p *Provider) DailyPrices(ctx context.Context, symbol string, start, end time.Time) ([]prices.Bar, error) {
	key := fmt.Sprintf("daily_%s_%s_%s", symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if v, ok := p.Cache.Get(key); ok {
		if bars, ok := v.([]prices.Bar); ok {
			return bars, nil
		}
	}
	bars, err := p.Upstream.DailyPrices(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	p.Cache.Set(key, bars, historyTTL)
	return bars, nil
}

func (p *Provider) LatestQuote(ctx context.Context, symbol string) (*prices.Quote, error) {
	key := fmt.Sprintf("quote_%s", symbol)
	if v, ok := p.Cache.Get(key); ok {
		if q, ok := v.(*prices.Quote); ok {
			return q, nil
		}
	}
	q, err := p.Upstream.LatestQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	p.Cache.Set(key, q, quoteTTL)
	return q, nil
}

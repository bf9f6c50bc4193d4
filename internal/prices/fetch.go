package prices

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const fetchConcurrency = 4

// FetchAll pulls daily history for many symbols concurrently. A failed
// symbol does not abort the batch: its error lands in the second map
// and the rest proceed. FetchAll itself only errors when the context
// is cancelled.
func FetchAll(ctx context.Context, p Provider, symbols []string, start, end time.Time) (map[string][]Bar, map[string]error, error) {
	var mu sync.Mutex
	bars := map[string][]Bar{}
	failures := map[string]error{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			out, err := p.DailyPrices(ctx, symbol, start, end)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failures[symbol] = err
				return nil
			}
			bars[symbol] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return bars, failures, nil
}

package market

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	applog "vypiska/internal/log"
)

// RatesFetcher is satisfied by RatesClient.
type RatesFetcher interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// StocksFetcher is satisfied by StocksClient.
type StocksFetcher interface {
	Fetch(ctx context.Context) ([]map[string]float64, error)
}

// Data is everything the home report needs from external providers.
type Data struct {
	Rates  map[string]float64
	Stocks []map[string]float64
}

// FetchAll queries both providers concurrently. A failing provider is
// logged and degraded to empty data; FetchAll itself never fails.
func FetchAll(ctx context.Context, rates RatesFetcher, stocks StocksFetcher, logger *slog.Logger) Data {
	if logger == nil {
		logger = slog.Default()
	}

	data := Data{
		Rates:  map[string]float64{},
		Stocks: []map[string]float64{},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if rates == nil {
			return nil
		}
		r, err := rates.Fetch(ctx)
		if err != nil {
			logger.Warn("currency rates unavailable", applog.FieldError, err)
			return nil
		}
		data.Rates = r
		return nil
	})
	g.Go(func() error {
		if stocks == nil {
			return nil
		}
		s, err := stocks.Fetch(ctx)
		if err != nil {
			logger.Warn("stock prices unavailable", applog.FieldError, err)
			return nil
		}
		data.Stocks = s
		return nil
	})

	// goroutines only return nil
	_ = g.Wait()
	return data
}

package market

import (
	"context"
	"strings"
	"time"

	"vypiska/internal/cache"
)

// DefaultCacheTTL bounds how stale displayed market data can get.
const DefaultCacheTTL = 15 * time.Minute

// CachedRates memoizes a rates fetcher. Useful in the interactive CLI
// where the user may request several reports in one session.
type CachedRates struct {
	inner RatesFetcher
	cache *cache.TTL[map[string]float64]
	key   string
}

func NewCachedRates(inner RatesFetcher, currencies []string, ttl time.Duration) *CachedRates {
	return &CachedRates{
		inner: inner,
		cache: cache.New[map[string]float64](ttl),
		key:   strings.Join(currencies, ","),
	}
}

func (c *CachedRates) Fetch(ctx context.Context) (map[string]float64, error) {
	if rates, ok := c.cache.Get(c.key); ok {
		return rates, nil
	}
	rates, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(c.key, rates)
	return rates, nil
}

// CachedStocks memoizes a stocks fetcher.
type CachedStocks struct {
	inner StocksFetcher
	cache *cache.TTL[[]map[string]float64]
	key   string
}

func NewCachedStocks(inner StocksFetcher, symbols []string, ttl time.Duration) *CachedStocks {
	return &CachedStocks{
		inner: inner,
		cache: cache.New[[]map[string]float64](ttl),
		key:   strings.Join(symbols, ","),
	}
}

func (c *CachedStocks) Fetch(ctx context.Context) ([]map[string]float64, error) {
	if stocks, ok := c.cache.Get(c.key); ok {
		return stocks, nil
	}
	stocks, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(c.key, stocks)
	return stocks, nil
}

// Package market fetches the exchange rates and stock prices shown on
// the home report. Both clients degrade to empty data on failure so a
// provider outage never blocks the report.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// RatesClient reads currency exchange rates from an apilayer-style
// endpoint authenticated with an apikey header.
type RatesClient struct {
	baseURL    string
	apiKey     string
	currencies []string
	httpClient *http.Client
}

func NewRatesClient(baseURL, apiKey string, currencies []string) *RatesClient {
	return &RatesClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		currencies: currencies,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch returns the rate of each configured currency against the
// account currency, keyed by currency code.
func (c *RatesClient) Fetch(ctx context.Context) (map[string]float64, error) {
	if len(c.currencies) == 0 {
		return map[string]float64{}, nil
	}

	q := url.Values{}
	q.Set("base", "RUB")
	q.Set("symbols", strings.Join(c.currencies, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rates provider returned %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rates response: %w", err)
	}

	// provider rates are per unit of base currency, the report wants the
	// price of one unit of each foreign currency
	out := make(map[string]float64, len(c.currencies))
	for _, cur := range c.currencies {
		rate, ok := payload.Rates[cur]
		if !ok || rate == 0 {
			continue
		}
		out[cur] = 1 / rate
	}
	return out, nil
}

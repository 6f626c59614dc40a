package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// StocksClient reads end-of-day stock quotes from a marketstack-style
// endpoint.
type StocksClient struct {
	baseURL    string
	apiKey     string
	symbols    []string
	httpClient *http.Client
}

func NewStocksClient(baseURL, apiKey string, symbols []string) *StocksClient {
	return &StocksClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		symbols:    symbols,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch returns one price snapshot keyed by symbol, wrapped in a
// single-element slice. An empty symbol list yields an empty slice.
func (c *StocksClient) Fetch(ctx context.Context) ([]map[string]float64, error) {
	if len(c.symbols) == 0 {
		return []map[string]float64{}, nil
	}

	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("symbols", strings.Join(c.symbols, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build stocks request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stocks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("stocks provider returned %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Data []struct {
			Symbol string  `json:"symbol"`
			Close  float64 `json:"close"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode stocks response: %w", err)
	}

	snapshot := make(map[string]float64, len(payload.Data))
	for _, quote := range payload.Data {
		if quote.Symbol == "" {
			continue
		}
		snapshot[quote.Symbol] = quote.Close
	}
	if len(snapshot) == 0 {
		return []map[string]float64{}, nil
	}
	return []map[string]float64{snapshot}, nil
}

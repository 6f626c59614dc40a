package market

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRatesClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("apikey"); got != "secret" {
			t.Errorf("apikey header = %q", got)
		}
		if got := r.URL.Query().Get("symbols"); got != "USD,EUR" {
			t.Errorf("symbols = %q", got)
		}
		io.WriteString(w, `{"rates": {"USD": 0.0136, "EUR": 0.0115}}`)
	}))
	defer srv.Close()

	rates, err := NewRatesClient(srv.URL, "secret", []string{"USD", "EUR"}).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rates) != 2 {
		t.Fatalf("rates = %v, want 2 entries", rates)
	}
	if math.Abs(rates["USD"]-1/0.0136) > 1e-9 {
		t.Errorf("USD = %v, want inverted provider rate", rates["USD"])
	}
}

func TestRatesClientFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewRatesClient(srv.URL, "secret", []string{"USD"}).Fetch(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestRatesClientFetch_NoCurrencies(t *testing.T) {
	rates, err := NewRatesClient("http://unused.invalid", "", nil).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rates) != 0 {
		t.Errorf("rates = %v, want empty without a request", rates)
	}
}

func TestStocksClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("access_key"); got != "secret" {
			t.Errorf("access_key = %q", got)
		}
		io.WriteString(w, `{"data": [
			{"symbol": "AAPL", "close": 150.12},
			{"symbol": "AMZN", "close": 3173.18}
		]}`)
	}))
	defer srv.Close()

	stocks, err := NewStocksClient(srv.URL, "secret", []string{"AAPL", "AMZN"}).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(stocks))
	}
	if stocks[0]["AAPL"] != 150.12 || stocks[0]["AMZN"] != 3173.18 {
		t.Errorf("snapshot = %v", stocks[0])
	}
}

func TestStocksClientFetch_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data": []}`)
	}))
	defer srv.Close()

	stocks, err := NewStocksClient(srv.URL, "secret", []string{"AAPL"}).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 0 {
		t.Errorf("snapshots = %v, want none", stocks)
	}
}

type fakeRates struct {
	rates map[string]float64
	err   error
}

func (f fakeRates) Fetch(context.Context) (map[string]float64, error) { return f.rates, f.err }

type fakeStocks struct {
	stocks []map[string]float64
	err    error
}

func (f fakeStocks) Fetch(context.Context) ([]map[string]float64, error) { return f.stocks, f.err }

func TestFetchAll(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	got := FetchAll(context.Background(),
		fakeRates{rates: map[string]float64{"USD": 73.21}},
		fakeStocks{stocks: []map[string]float64{{"AAPL": 150.12}}},
		logger)
	if got.Rates["USD"] != 73.21 {
		t.Errorf("rates = %v", got.Rates)
	}
	if len(got.Stocks) != 1 {
		t.Errorf("stocks = %v", got.Stocks)
	}
}

func TestFetchAll_DegradesOnFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	got := FetchAll(context.Background(),
		fakeRates{err: errors.New("provider down")},
		fakeStocks{err: errors.New("provider down")},
		logger)
	if got.Rates == nil || len(got.Rates) != 0 {
		t.Errorf("rates = %#v, want empty map", got.Rates)
	}
	if got.Stocks == nil || len(got.Stocks) != 0 {
		t.Errorf("stocks = %#v, want empty slice", got.Stocks)
	}
}

func TestFetchAll_NilClients(t *testing.T) {
	got := FetchAll(context.Background(), nil, nil, nil)
	if len(got.Rates) != 0 || len(got.Stocks) != 0 {
		t.Errorf("data = %+v, want empty", got)
	}
}

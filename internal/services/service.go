// Package services exposes the query engine as presentation payloads.
// Every public operation returns well-formed JSON: a success payload or
// the uniform failure payload, never a panic or a raw error. Underlying
// causes are logged with detail and not exposed to callers.
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vypiska/internal/analytics"
	"vypiska/internal/core"
	applog "vypiska/internal/log"
	"vypiska/internal/report"
)

var errInvalidMonth = errors.New("month must be between 1 and 12")

// dateLayout parses caller-supplied date filters.
const dateLayout = "2006-01-02"

// dateTimeLayout parses the home-report target date-time.
const dateTimeLayout = "2006-01-02 15:04:05"

// Service runs queries over normalized transactions and renders the
// results as JSON payloads. It holds no per-call state: operations may
// run concurrently from multiple callers.
type Service struct {
	log *slog.Logger
}

// New creates a query service. A nil logger falls back to the default.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{log: logger}
}

// run executes one operation and converts any failure, including a
// panic, into the uniform error payload.
func (s *Service) run(op string, fn func() (any, error)) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("query panicked", applog.FieldOperation, op, applog.FieldError, fmt.Sprint(r))
			out = errorPayload()
		}
	}()
	v, err := fn()
	if err != nil {
		s.log.Error("query failed", applog.FieldOperation, op, applog.FieldError, err)
		return errorPayload()
	}
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("response marshal failed", applog.FieldOperation, op, applog.FieldError, err)
		return errorPayload()
	}
	return b
}

// Normalize converts raw rows with the lenient batch policy, logging
// per-row issues. It backs every *FromRows operation.
func (s *Service) Normalize(rows []core.RawRow) []core.Transaction {
	return core.NormalizeAll(rows, s.log)
}

// TopCategories ranks the month's spending categories (top 3, absolute
// sums over expenses).
func (s *Service) TopCategories(txs []core.Transaction, year, month int) []byte {
	return s.run("top_categories", func() (any, error) {
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: %d", errInvalidMonth, month)
		}
		totals := analytics.TopCategories(txs, year, time.Month(month))
		payload := topCategoriesPayload{TopCategories: make([]categoryPayload, 0, len(totals))}
		for _, ct := range totals {
			payload.TopCategories = append(payload.TopCategories, categoryPayload{
				Category: ct.Category,
				Amount:   ct.Total,
			})
		}
		s.log.Info("ranked spending categories",
			applog.FieldYear, year, applog.FieldMonth, month, "categories", len(payload.TopCategories))
		return payload, nil
	})
}

// TopCategoriesFromRows is TopCategories with an implicit normalization
// step.
func (s *Service) TopCategoriesFromRows(rows []core.RawRow, year, month int) []byte {
	return s.TopCategories(s.Normalize(rows), year, month)
}

// PiggyBank computes the round-up savings total for one month of the
// given reference year.
func (s *Service) PiggyBank(txs []core.Transaction, year, month int, step int64) []byte {
	return s.run("piggy_bank", func() (any, error) {
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: %d", errInvalidMonth, month)
		}
		total, err := analytics.RoundUpTotal(txs, year, time.Month(month), step)
		if err != nil {
			return nil, err
		}
		s.log.Info("computed piggy bank total",
			applog.FieldYear, year, applog.FieldMonth, month, applog.FieldStep, step)
		return piggyBankPayload{TotalInvestment: total}, nil
	})
}

// PiggyBankFromRows is PiggyBank with an implicit normalization step.
func (s *Service) PiggyBankFromRows(rows []core.RawRow, year, month int, step int64) []byte {
	return s.PiggyBank(s.Normalize(rows), year, month, step)
}

// Search returns every transaction whose description or category
// contains the query, case-insensitively. The empty query matches all.
func (s *Service) Search(txs []core.Transaction, query string) []byte {
	return s.run("search", func() (any, error) {
		matches := analytics.Search(txs, query)
		s.log.Info("ran text search", applog.FieldQuery, query, "matches", len(matches))
		return resultsPayload{Results: newTransactionPayloads(matches)}, nil
	})
}

// SearchFromRows is Search with an implicit normalization step.
func (s *Service) SearchFromRows(rows []core.RawRow, query string) []byte {
	return s.Search(s.Normalize(rows), query)
}

// PhoneNumbers returns transactions whose description contains a mobile
// phone number.
func (s *Service) PhoneNumbers(txs []core.Transaction) []byte {
	return s.run("phone_numbers", func() (any, error) {
		matches := analytics.PhoneNumbers(txs)
		s.log.Info("detected phone numbers", "matches", len(matches))
		return resultsPayload{Results: newTransactionPayloads(matches)}, nil
	})
}

// PhoneNumbersFromRows is PhoneNumbers with an implicit normalization
// step.
func (s *Service) PhoneNumbersFromRows(rows []core.RawRow) []byte {
	return s.PhoneNumbers(s.Normalize(rows))
}

// PersonalTransfers returns person-to-person transfer transactions.
func (s *Service) PersonalTransfers(txs []core.Transaction) []byte {
	return s.run("personal_transfers", func() (any, error) {
		matches := analytics.PersonalTransfers(txs)
		s.log.Info("detected personal transfers", "matches", len(matches))
		return resultsPayload{Results: newTransactionPayloads(matches)}, nil
	})
}

// PersonalTransfersFromRows is PersonalTransfers with an implicit
// normalization step.
func (s *Service) PersonalTransfersFromRows(rows []core.RawRow) []byte {
	return s.PersonalTransfers(s.Normalize(rows))
}

// SpendingByWeekday nets signed amounts per weekday. dateFilter, when
// non-empty, is an inclusive YYYY-MM-DD upper bound on the transaction
// date.
func (s *Service) SpendingByWeekday(txs []core.Transaction, dateFilter string) []byte {
	return s.run("spending_by_weekday", func() (any, error) {
		var until time.Time
		if dateFilter != "" {
			var err error
			until, err = time.Parse(dateLayout, dateFilter)
			if err != nil {
				return nil, fmt.Errorf("invalid date filter %q: %w", dateFilter, err)
			}
		}
		buckets := analytics.SpendingByWeekday(txs, until)
		named := make(map[string]json.RawMessage, len(buckets))
		for wd, total := range buckets {
			b, err := total.MarshalJSON()
			if err != nil {
				return nil, err
			}
			named[weekdayNames[wd]] = b
		}
		s.log.Info("aggregated spending by weekday", applog.FieldDate, dateFilter, "buckets", len(named))
		return named, nil
	})
}

// SpendingByWeekdayFromRows is SpendingByWeekday with an implicit
// normalization step.
func (s *Service) SpendingByWeekdayFromRows(rows []core.RawRow, dateFilter string) []byte {
	return s.SpendingByWeekday(s.Normalize(rows), dateFilter)
}

// CategoryTrend reports daily net spending for one category over the 90
// days following startDate (YYYY-MM-DD).
func (s *Service) CategoryTrend(txs []core.Transaction, category, startDate string) []byte {
	return s.run("category_trend", func() (any, error) {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		points := analytics.CategoryTrend(txs, category, start)
		payload := trendPayload{
			Category:      category,
			StartDate:     start.Format(dateLayout),
			EndDate:       start.AddDate(0, 0, analytics.TrendWindowDays).Format(dateLayout),
			SpendingTrend: make([]trendPointPayload, 0, len(points)),
		}
		for _, p := range points {
			payload.SpendingTrend = append(payload.SpendingTrend, trendPointPayload{
				Date:   p.Date.Format(dateLayout),
				Amount: p.Total,
			})
		}
		s.log.Info("built category trend",
			applog.FieldCategory, category, applog.FieldDate, startDate, "points", len(points))
		return payload, nil
	})
}

// CategoryTrendFromRows is CategoryTrend with an implicit normalization
// step.
func (s *Service) CategoryTrendFromRows(rows []core.RawRow, category, startDate string) []byte {
	return s.CategoryTrend(s.Normalize(rows), category, startDate)
}

// HomeReport composes the home-page payload for a target date-time
// (YYYY-MM-DD HH:MM:SS). Rates and stocks are reference data passed
// through from the market boundary; nil means "no data" and composes an
// empty section.
func (s *Service) HomeReport(txs []core.Transaction, target string, rates map[string]float64, stocks []map[string]float64) []byte {
	return s.run("home_report", func() (any, error) {
		at, err := time.Parse(dateTimeLayout, target)
		if err != nil {
			return nil, fmt.Errorf("invalid target date %q: %w", target, err)
		}
		rep := report.Compose(txs, at, rates, stocks)
		s.log.Info("composed home report", applog.FieldDate, target,
			"cards", len(rep.Cards), "top_transactions", len(rep.TopTransactions))
		return rep, nil
	})
}

// HomeReportFromRows is HomeReport with an implicit normalization step.
func (s *Service) HomeReportFromRows(rows []core.RawRow, target string, rates map[string]float64, stocks []map[string]float64) []byte {
	return s.HomeReport(s.Normalize(rows), target, rates, stocks)
}

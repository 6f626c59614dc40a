package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"vypiska/internal/source"
)

type Config struct {
	// Statement source
	StatementBackend string
	StatementPath    string
	StatementSheet   string
	SQLiteTable      string

	// Google Sheets source
	GoogleSpreadsheetID      string
	GoogleSheetName          string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string

	// Market data providers
	RatesAPIURL   string
	RatesAPIKey   string
	Currencies    []string
	StocksAPIURL  string
	StocksAPIKey  string
	StockSymbols  []string

	// AMQP (optional report publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Piggy bank rounding step
	RoundingStep int64
}

func Load() *Config {
	cfg := &Config{
		StatementBackend: getEnv("STATEMENT_BACKEND", "xlsx"),
		StatementPath:    getEnv("STATEMENT_PATH", "./data/operations.xlsx"),
		StatementSheet:   getEnv("STATEMENT_SHEET", ""),
		SQLiteTable:      getEnv("SQLITE_TABLE", "operations"),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:          getEnv("GOOGLE_SHEET_NAME", ""),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),

		RatesAPIURL:  getEnv("RATES_API_URL", "https://api.apilayer.com/exchangerates_data/latest"),
		RatesAPIKey:  getEnv("RATES_API_KEY", ""),
		Currencies:   getEnvList("CURRENCIES", []string{"USD", "EUR"}),
		StocksAPIURL: getEnv("STOCKS_API_URL", "https://api.marketstack.com/v1/eod/latest"),
		StocksAPIKey: getEnv("STOCKS_API_KEY", ""),
		StockSymbols: getEnvList("STOCK_SYMBOLS", []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "vypiska"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "home_reports"),

		RoundingStep: getEnvInt64("ROUNDING_STEP", 50),
	}

	return cfg
}

// SourceConfig converts the app config into what the source factory
// needs.
func (c *Config) SourceConfig() source.Config {
	return source.Config{
		Type:            source.Backend(c.StatementBackend),
		Path:            c.StatementPath,
		Sheet:           c.StatementSheet,
		Table:           c.SQLiteTable,
		SpreadsheetID:   c.GoogleSpreadsheetID,
		SheetName:       c.GoogleSheetName,
		CredentialsJSON: c.GoogleServiceAccountJSON,
		CredentialsFile: c.GoogleServiceAccountFile,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	backend := source.Backend(c.StatementBackend)
	if !backend.IsValid() {
		errors = append(errors, fmt.Sprintf("invalid statement backend '%s': must be one of %v", c.StatementBackend, source.Backends()))
	} else if err := c.SourceConfig().Validate(); err != nil {
		errors = append(errors, err.Error())
	}

	switch backend {
	case source.XLSXBackend, source.CSVBackend, source.SQLiteBackend:
		if c.StatementPath != "" {
			if _, err := os.Stat(c.StatementPath); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("statement file does not exist: %s", c.StatementPath))
			}
		}
	case source.SheetsBackend:
		if c.GoogleServiceAccountFile != "" {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.RoundingStep < 1 {
		errors = append(errors, fmt.Sprintf("invalid rounding step %d: must be at least 1", c.RoundingStep))
	}

	for _, cur := range c.Currencies {
		if len(cur) != 3 || cur != strings.ToUpper(cur) {
			errors = append(errors, fmt.Sprintf("invalid currency code '%s': must be a three-letter uppercase code", cur))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

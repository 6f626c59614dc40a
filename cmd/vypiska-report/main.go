// vypiska-report renders the home report for one date and optionally
// publishes it to RabbitMQ. Meant for cron.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vypiska/internal/amqp"
	"vypiska/internal/cli"
	applog "vypiska/internal/log"
	"vypiska/internal/market"
	"vypiska/internal/services"
)

func main() {
	var (
		target  = flag.String("date", "", "report date and time, YYYY-MM-DD HH:MM:SS (default: now)")
		publish = flag.Bool("publish", false, "publish the report to AMQP (requires AMQP_URL)")
	)
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := cli.LoadAndValidateConfig(logger.Logger)
	loader := cli.InitLoader(ctx, logger.Logger, cfg)
	rows := cli.LoadStatement(ctx, logger.Logger, loader)

	when := *target
	if when == "" {
		when = time.Now().Format("2006-01-02 15:04:05")
	}

	rates := market.NewRatesClient(cfg.RatesAPIURL, cfg.RatesAPIKey, cfg.Currencies)
	stocks := market.NewStocksClient(cfg.StocksAPIURL, cfg.StocksAPIKey, cfg.StockSymbols)
	data := market.FetchAll(ctx, rates, stocks, logger.Logger)

	svc := services.New(logger.Logger)
	report := svc.HomeReportFromRows(rows, when, data.Rates, data.Stocks)
	fmt.Println(string(report))

	if !*publish {
		return
	}
	if cfg.AMQPURL == "" {
		logger.Error("publish requested but AMQP_URL is not set")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger.Logger)
	if err != nil {
		logger.Error("failed to connect to AMQP", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	if err := client.PublishReport(ctx, when, report); err != nil {
		logger.Error("failed to publish report", applog.FieldError, err)
		os.Exit(1)
	}
}

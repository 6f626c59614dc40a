package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"vypiska/internal/cli"
	"vypiska/internal/core"
	applog "vypiska/internal/log"
	"vypiska/internal/market"
	"vypiska/internal/services"
)

const menu = `
Выберите операцию:
 1. Главная страница (отчёт на дату)
 2. Топ категорий трат за месяц
 3. Инвесткопилка (округление трат)
 4. Поиск по описанию и категории
 5. Переводы на мобильные номера
 6. Переводы физическим лицам
 7. Траты по дням недели
 8. Динамика трат по категории
 0. Выход
`

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := cli.LoadAndValidateConfig(logger.Logger)
	loader := cli.InitLoader(ctx, logger.Logger, cfg)
	rows := cli.LoadStatement(ctx, logger.Logger, loader)

	svc := services.New(logger.Logger)
	txs := svc.Normalize(rows)
	logger.Info("normalized statement", applog.FieldRows, len(txs))

	// provider responses are cached so repeated reports in one session
	// do not burn API quota
	rates := market.NewCachedRates(
		market.NewRatesClient(cfg.RatesAPIURL, cfg.RatesAPIKey, cfg.Currencies),
		cfg.Currencies, market.DefaultCacheTTL)
	stocks := market.NewCachedStocks(
		market.NewStocksClient(cfg.StocksAPIURL, cfg.StocksAPIKey, cfg.StockSymbols),
		cfg.StockSymbols, market.DefaultCacheTTL)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(menu)
		fmt.Print("> ")
		choice, ok := readLine(in)
		if !ok {
			return
		}

		switch choice {
		case "0", "q":
			return
		case "1":
			runHomeReport(ctx, in, rates, stocks, svc, txs, logger)
		case "2":
			year, month, ok := askYearMonth(in)
			if !ok {
				continue
			}
			printJSON(svc.TopCategories(txs, year, month))
		case "3":
			year, month, ok := askYearMonth(in)
			if !ok {
				continue
			}
			step := askInt64(in, fmt.Sprintf("Шаг округления [%d]: ", cfg.RoundingStep), cfg.RoundingStep)
			printJSON(svc.PiggyBank(txs, year, month, step))
		case "4":
			query := ask(in, "Строка поиска: ")
			printJSON(svc.Search(txs, query))
		case "5":
			printJSON(svc.PhoneNumbers(txs))
		case "6":
			printJSON(svc.PersonalTransfers(txs))
		case "7":
			date := ask(in, "Дата (ГГГГ-ММ-ДД, пусто - без фильтра): ")
			printJSON(svc.SpendingByWeekday(txs, date))
		case "8":
			category := ask(in, "Категория: ")
			start := ask(in, "Дата начала (ГГГГ-ММ-ДД): ")
			printJSON(svc.CategoryTrend(txs, category, start))
		default:
			fmt.Println("Неизвестная команда.")
		}
	}
}

func runHomeReport(ctx context.Context, in *bufio.Scanner, rates market.RatesFetcher, stocks market.StocksFetcher, svc *services.Service, txs []core.Transaction, logger *applog.Logger) {
	target := ask(in, "Дата и время (ГГГГ-ММ-ДД ЧЧ:ММ:СС, пусто - сейчас): ")
	if target == "" {
		target = time.Now().Format("2006-01-02 15:04:05")
	}

	data := market.FetchAll(ctx, rates, stocks, logger.Logger)
	printJSON(svc.HomeReport(txs, target, data.Rates, data.Stocks))
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func ask(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	line, _ := readLine(in)
	return line
}

func askYearMonth(in *bufio.Scanner) (int, int, bool) {
	now := time.Now()
	year := int(askInt64(in, fmt.Sprintf("Год [%d]: ", now.Year()), int64(now.Year())))
	month := int(askInt64(in, fmt.Sprintf("Месяц [%d]: ", int(now.Month())), int64(now.Month())))
	if month < 1 || month > 12 {
		fmt.Println("Месяц должен быть от 1 до 12.")
		return 0, 0, false
	}
	return year, month, true
}

func askInt64(in *bufio.Scanner, prompt string, fallback int64) int64 {
	line := ask(in, prompt)
	if line == "" {
		return fallback
	}
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		fmt.Println("Не число, использую значение по умолчанию.")
		return fallback
	}
	return v
}

func printJSON(payload []byte) {
	fmt.Println(string(payload))
}

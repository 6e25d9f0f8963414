package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stocksage/stocksage/internal/adapters/config"
	"github.com/stocksage/stocksage/internal/adapters/database"
	"github.com/stocksage/stocksage/internal/adapters/news"
	"github.com/stocksage/stocksage/internal/adapters/telegram"
	"github.com/stocksage/stocksage/internal/directory"
	"github.com/stocksage/stocksage/internal/reports"
	"github.com/stocksage/stocksage/internal/sentiment"
	"github.com/stocksage/stocksage/internal/workers"
	"github.com/stocksage/stocksage/pkg/logger"
	"github.com/stocksage/stocksage/pkg/worker"
)

func main() {
	var (
		tickersFlag    = flag.String("tickers", "", "comma-separated ticker symbols (default: watchlist from env)")
		daysFlag       = flag.Int("days", 0, "lookback window in days (default: from env)")
		queryFlag      = flag.String("query", "", "optional topical search query, e.g. 'product reviews'")
		watchFlag      = flag.Bool("watch", false, "keep running and refresh the watchlist periodically")
		migrationsFlag = flag.String("migrations", "migrations", "path to database migrations")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx, *tickersFlag, *daysFlag, *queryFlag, *watchFlag, *migrationsFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, tickersFlag string, days int, query string, watch bool, migrationsPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("StockSage sentiment analyzer starting",
		zap.Bool("watch", watch),
		zap.Bool("search_enabled", cfg.Search.Enabled && cfg.Search.APIKey != ""),
	)

	if days <= 0 {
		days = cfg.Sentiment.DefaultDays
	}

	tickers := cfg.Watchlist.Tickers
	if tickersFlag != "" {
		tickers = splitTickers(tickersFlag)
	}
	if len(tickers) == 0 {
		return fmt.Errorf("no tickers to analyze")
	}

	// Assemble the pipeline
	dir := directory.New()
	provider := news.NewSerperProvider(cfg.Search.APIKey, cfg.Search.Enabled, cfg.Search.Timeout, dir)
	fetcher := news.NewFetcher(provider, news.NewFallbackGenerator(dir))
	scorer := sentiment.NewScorer(sentiment.NewAnalyzer())
	service := sentiment.NewService(fetcher, scorer, dir, cfg.Sentiment.MaxNewsItems, cfg.Sentiment.BatchConcurrency)

	// Optional report audit store
	var repo *reports.Repository
	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.RunMigrations(db.Conn(), migrationsPath); err != nil {
			return err
		}
		repo = reports.NewRepository(db)
	}

	// Optional Telegram notifier
	var notifier *telegram.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewNotifier(&cfg.Telegram)
		if err != nil {
			return err
		}
	}

	if watch {
		return runWatch(ctx, cfg, service, repo, notifier, tickers, days)
	}

	return runOnce(ctx, service, repo, tickers, days, query)
}

// runOnce analyzes the tickers one time and prints reports as JSON
func runOnce(ctx context.Context, service *sentiment.Service, repo *reports.Repository, tickers []string, days int, query string) error {
	results, err := service.AnalyzeBatch(ctx, tickers, days, query)
	if err != nil {
		return err
	}

	if repo != nil {
		for _, report := range results {
			if err := repo.Save(ctx, report); err != nil {
				logger.Warn("failed to persist report",
					zap.String("ticker", report.Ticker),
					zap.Error(err),
				)
			}
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// runWatch refreshes the watchlist periodically until the context ends
func runWatch(
	ctx context.Context,
	cfg *config.Config,
	service *sentiment.Service,
	repo *reports.Repository,
	notifier *telegram.Notifier,
	tickers []string,
	days int,
) error {
	w := workers.NewWatchlistWorker(service, repo, notifier, tickers, days)

	pw := worker.NewPeriodicWorker(w, cfg.Watchlist.RefreshInterval)
	pw.Start(ctx)

	<-ctx.Done()
	pw.Stop(30 * time.Second)

	return nil
}

func splitTickers(s string) []string {
	parts := strings.Split(s, ",")
	tickers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			tickers = append(tickers, p)
		}
	}
	return tickers
}

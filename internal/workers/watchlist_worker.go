package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stocksage/stocksage/internal/adapters/telegram"
	"github.com/stocksage/stocksage/internal/reports"
	"github.com/stocksage/stocksage/internal/sentiment"
	"github.com/stocksage/stocksage/pkg/logger"
)

// reportRetention is how long persisted reports are kept
const reportRetention = 30 * 24 * time.Hour

// WatchlistWorker periodically re-analyzes a fixed ticker watchlist,
// persisting and broadcasting the results. Repository and notifier are
// optional; a nil value just skips that sink.
type WatchlistWorker struct {
	service  *sentiment.Service
	repo     *reports.Repository
	notifier *telegram.Notifier
	tickers  []string
	days     int
}

// NewWatchlistWorker creates new watchlist worker
func NewWatchlistWorker(
	service *sentiment.Service,
	repo *reports.Repository,
	notifier *telegram.Notifier,
	tickers []string,
	days int,
) *WatchlistWorker {
	return &WatchlistWorker{
		service:  service,
		repo:     repo,
		notifier: notifier,
		tickers:  tickers,
		days:     days,
	}
}

// Name returns worker name for logging
func (w *WatchlistWorker) Name() string {
	return "watchlist_sentiment"
}

// Run executes one refresh pass over the watchlist
func (w *WatchlistWorker) Run(ctx context.Context) error {
	logger.Debug("refreshing watchlist sentiment",
		zap.Strings("tickers", w.tickers),
	)

	results, err := w.service.AnalyzeBatch(ctx, w.tickers, w.days, "")
	if err != nil {
		return err
	}

	if w.repo != nil {
		for _, report := range results {
			if err := w.repo.Save(ctx, report); err != nil {
				logger.Warn("failed to persist report",
					zap.String("ticker", report.Ticker),
					zap.Error(err),
				)
			}
		}
		if err := w.repo.CleanupOld(ctx, reportRetention); err != nil {
			logger.Warn("failed to clean up old reports", zap.Error(err))
		}
	}

	if w.notifier != nil {
		if err := w.notifier.SendWatchlistSummary(results); err != nil {
			logger.Warn("failed to send watchlist summary", zap.Error(err))
		}
	}

	logger.Info("watchlist sentiment refreshed",
		zap.Int("tickers", len(results)),
	)

	return nil
}

package sentiment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stocksage/stocksage/internal/adapters/news"
	"github.com/stocksage/stocksage/internal/directory"
	"github.com/stocksage/stocksage/internal/signals"
	"github.com/stocksage/stocksage/pkg/logger"
	"github.com/stocksage/stocksage/pkg/models"
)

// DefaultDays is the lookback window used when the caller passes a
// non-positive day count
const DefaultDays = 30

// DefaultMaxNewsItems caps how many fetched items are scored per report
const DefaultMaxNewsItems = 10

// Service produces sentiment reports for tickers. Reports are
// independent values: concurrent Analyze calls share only the read-only
// company directory and the provider's connection pool.
type Service struct {
	fetcher     *news.Fetcher
	scorer      *Scorer
	dir         *directory.Directory
	maxItems    int
	concurrency int
}

// NewService creates new sentiment service. maxItems and concurrency
// fall back to sane defaults when non-positive.
func NewService(fetcher *news.Fetcher, scorer *Scorer, dir *directory.Directory, maxItems, concurrency int) *Service {
	if maxItems <= 0 {
		maxItems = DefaultMaxNewsItems
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Service{
		fetcher:     fetcher,
		scorer:      scorer,
		dir:         dir,
		maxItems:    maxItems,
		concurrency: concurrency,
	}
}

// Analyze builds a complete sentiment report for one ticker. Fetch
// failures degrade to synthetic data internally, so the returned report
// is always fully populated.
func (s *Service) Analyze(ctx context.Context, ticker string, days int, searchQuery string) (*models.SentimentReport, error) {
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	if days <= 0 {
		days = DefaultDays
	}

	items := s.fetcher.Fetch(ctx, ticker, searchQuery)
	now := time.Now()

	limit := len(items)
	if limit > s.maxItems {
		limit = s.maxItems
	}

	scored := make([]models.ScoredNewsItem, 0, limit)
	var totalScore float64
	for _, item := range items[:limit] {
		scoredItem, rawScore := s.scorer.ScoreItem(item, ticker, days, now)
		totalScore += rawScore
		scored = append(scored, scoredItem)
	}

	var overall float64
	if len(scored) > 0 {
		overall = decimal.NewFromFloat(totalScore / float64(len(scored))).Round(2).InexactFloat64()
	} else {
		// No items at all: derive a stable score from the ticker itself
		overall = round2(s.scorer.DeterministicSentiment(ticker, "fallback"))
	}

	searchContext := searchQuery
	if searchContext == "" {
		searchContext = fmt.Sprintf("%s stock financial news analysis", ticker)
	}

	report := &models.SentimentReport{
		Ticker:                ticker,
		CompanyName:           s.dir.Name(ticker),
		SearchContext:         searchContext,
		OverallSentimentScore: overall,
		SentimentLabel:        OverallLabel(overall),
		NewsCount:             len(scored),
		SocialMediaMentions:   signals.Mentions(ticker, len(scored)),
		AnalystRatings:        signals.AnalystRatings(overall),
		NewsItems:             scored,
	}

	logger.Info("sentiment report generated",
		zap.String("ticker", ticker),
		zap.Float64("score", overall),
		zap.String("label", report.SentimentLabel),
		zap.Int("news_count", report.NewsCount),
	)

	return report, nil
}

// AnalyzeBatch analyzes several tickers with bounded parallel fan-out.
// Output order matches the input order; each report is computed
// independently with no shared mutable state.
func (s *Service) AnalyzeBatch(ctx context.Context, tickers []string, days int, searchQuery string) ([]*models.SentimentReport, error) {
	reports := make([]*models.SentimentReport, len(tickers))
	errs := make([]error, len(tickers))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, ticker := range tickers {
		wg.Add(1)
		go func(i int, ticker string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			reports[i], errs[i] = s.Analyze(ctx, ticker, days, searchQuery)
		}(i, ticker)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %q: %w", tickers[i], err)
		}
	}

	return reports, nil
}

package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/stocksage/stocksage/internal/adapters/database"
	"github.com/stocksage/stocksage/pkg/logger"
	"github.com/stocksage/stocksage/pkg/models"
)

// Repository persists generated sentiment reports as an audit trail.
// Stored rows are never read back into the pipeline: every report stays
// a pure function of its inputs.
type Repository struct {
	db *database.DB
}

// NewRepository creates new report repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save stores one report
func (r *Repository) Save(ctx context.Context, report *models.SentimentReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	headlines := make([]string, 0, len(report.NewsItems))
	for _, item := range report.NewsItems {
		headlines = append(headlines, item.Headline)
	}

	_, err = r.db.DB().ExecContext(ctx, `
		INSERT INTO sentiment_reports (
			ticker, company_name, search_context, overall_score, sentiment_label,
			news_count, social_media_mentions, buy_count, hold_count, sell_count,
			headlines, report, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		report.Ticker,
		report.CompanyName,
		report.SearchContext,
		report.OverallSentimentScore,
		report.SentimentLabel,
		report.NewsCount,
		report.SocialMediaMentions,
		report.AnalystRatings.Buy,
		report.AnalystRatings.Hold,
		report.AnalystRatings.Sell,
		pq.Array(headlines),
		payload,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	logger.Debug("saved sentiment report",
		zap.String("ticker", report.Ticker),
		zap.Float64("score", report.OverallSentimentScore),
	)

	return nil
}

// StoredReport is one persisted report row
type StoredReport struct {
	ID                  int64          `db:"id"`
	Ticker              string         `db:"ticker"`
	CompanyName         string         `db:"company_name"`
	SearchContext       string         `db:"search_context"`
	OverallScore        float64        `db:"overall_score"`
	SentimentLabel      string         `db:"sentiment_label"`
	NewsCount           int            `db:"news_count"`
	SocialMediaMentions int64          `db:"social_media_mentions"`
	Buy                 int            `db:"buy_count"`
	Hold                int            `db:"hold_count"`
	Sell                int            `db:"sell_count"`
	Headlines           pq.StringArray `db:"headlines"`
	Report              []byte         `db:"report"`
	CreatedAt           time.Time      `db:"created_at"`
}

// ListRecent returns the latest stored reports for a ticker
func (r *Repository) ListRecent(ctx context.Context, ticker string, limit int) ([]StoredReport, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []StoredReport
	err := r.db.DB().SelectContext(ctx, &rows, `
		SELECT id, ticker, company_name, search_context, overall_score, sentiment_label,
		       news_count, social_media_mentions, buy_count, hold_count, sell_count,
		       headlines, report, created_at
		FROM sentiment_reports
		WHERE ticker = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}

	return rows, nil
}

// CleanupOld removes reports older than the retention window
func (r *Repository) CleanupOld(ctx context.Context, retention time.Duration) error {
	result, err := r.db.DB().ExecContext(ctx, `
		DELETE FROM sentiment_reports
		WHERE created_at < $1
	`, time.Now().Add(-retention))
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows > 0 {
		logger.Info("cleaned up old reports", zap.Int64("deleted", rows))
	}

	return nil
}

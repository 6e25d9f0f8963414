package news

import (
	"context"

	"github.com/stocksage/stocksage/pkg/models"
)

// Provider represents a live news source
type Provider interface {
	// GetName returns provider name for logging
	GetName() string

	// FetchNews fetches raw news items for a ticker. topicalQuery may be
	// empty, in which case the provider uses its default query form.
	FetchNews(ctx context.Context, ticker, topicalQuery string) ([]models.NewsItem, error)

	// IsEnabled returns whether provider is enabled
	IsEnabled() bool
}

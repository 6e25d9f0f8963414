package news

import (
	"context"

	"go.uber.org/zap"

	"github.com/stocksage/stocksage/pkg/logger"
	"github.com/stocksage/stocksage/pkg/models"
)

// Fetcher returns raw news items for a ticker, substituting synthetic
// fallback data on any provider failure. It never returns an error:
// fetch failures are a logging concern, not a caller concern.
type Fetcher struct {
	provider Provider
	fallback *FallbackGenerator
}

// NewFetcher creates new fetcher
func NewFetcher(provider Provider, fallback *FallbackGenerator) *Fetcher {
	return &Fetcher{
		provider: provider,
		fallback: fallback,
	}
}

// Fetch fetches news for a ticker, routing to fallback data when the
// provider is unavailable or errors out
func (f *Fetcher) Fetch(ctx context.Context, ticker, topicalQuery string) []models.NewsItem {
	items, err := f.provider.FetchNews(ctx, ticker, topicalQuery)
	if err != nil {
		logger.Warn("news fetch failed, using fallback data",
			zap.String("provider", f.provider.GetName()),
			zap.String("ticker", ticker),
			zap.String("query", topicalQuery),
			zap.Error(err),
		)
		return f.fallback.Generate(ticker, topicalQuery)
	}

	return items
}

package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stocksage/stocksage/internal/directory"
	"github.com/stocksage/stocksage/pkg/logger"
	"github.com/stocksage/stocksage/pkg/models"
)

const (
	serperAPIURL = "https://google.serper.dev/search"

	// Serper returns at most this many results per request
	serperResultCount = 20
)

// SerperProvider fetches stock news through the Serper search API
type SerperProvider struct {
	apiKey  string
	baseURL string
	enabled bool
	client  *http.Client
	dir     *directory.Directory
}

// NewSerperProvider creates new Serper provider. An empty API key keeps
// the provider constructible; requests then fail and callers fall back
// to synthetic data.
func NewSerperProvider(apiKey string, enabled bool, timeout time.Duration, dir *directory.Directory) *SerperProvider {
	return &SerperProvider{
		apiKey:  apiKey,
		baseURL: serperAPIURL,
		enabled: enabled,
		client:  &http.Client{Timeout: timeout},
		dir:     dir,
	}
}

func (p *SerperProvider) GetName() string {
	return "serper"
}

func (p *SerperProvider) IsEnabled() bool {
	return p.enabled
}

// BuildQuery returns the search query used for a ticker. A topical query
// is anchored to the company name so results stay on the right entity.
func (p *SerperProvider) BuildQuery(ticker, topicalQuery string) string {
	if topicalQuery != "" {
		return fmt.Sprintf("%s (%s) %s", p.dir.Name(ticker), ticker, topicalQuery)
	}
	return fmt.Sprintf("%s stock financial news analysis", ticker)
}

func (p *SerperProvider) FetchNews(ctx context.Context, ticker, topicalQuery string) ([]models.NewsItem, error) {
	if !p.enabled {
		return nil, fmt.Errorf("serper provider is disabled")
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("serper API key is not configured")
	}

	query := p.BuildQuery(ticker, topicalQuery)

	payload, err := json.Marshal(map[string]any{
		"q":   query,
		"num": serperResultCount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		News []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Source  string `json:"source"`
			Link    string `json:"link"`
		} `json:"news"`
		Organic []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Source  string `json:"source"`
			Link    string `json:"link"`
		} `json:"organic"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]models.NewsItem, 0, len(result.News))
	for _, article := range result.News {
		items = append(items, models.NewsItem{
			Title:   article.Title,
			Snippet: article.Snippet,
			Source:  article.Source,
			Link:    article.Link,
		})
	}

	// No dedicated news block: fall back to organic results that carry
	// a snippet to analyze.
	if len(items) == 0 {
		for _, article := range result.Organic {
			if article.Snippet == "" {
				continue
			}
			items = append(items, models.NewsItem{
				Title:   article.Title,
				Snippet: article.Snippet,
				Source:  article.Source,
				Link:    article.Link,
			})
		}
	}

	logger.Info("fetched news from serper",
		zap.String("ticker", ticker),
		zap.String("query", query),
		zap.Int("count", len(items)),
	)

	return items, nil
}

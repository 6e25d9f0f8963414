package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stocksage/stocksage/internal/adapters/news"
	"github.com/stocksage/stocksage/internal/directory"
	"github.com/stocksage/stocksage/internal/signals"
	"github.com/stocksage/stocksage/pkg/models"
)

// failingProvider simulates an unreachable news API
type failingProvider struct{}

func (failingProvider) GetName() string { return "failing" }
func (failingProvider) IsEnabled() bool { return true }

func (failingProvider) FetchNews(ctx context.Context, ticker, topicalQuery string) ([]models.NewsItem, error) {
	return nil, fmt.Errorf("connection refused")
}

// fixedProvider returns a canned item list
type fixedProvider struct {
	items []models.NewsItem
}

func (fixedProvider) GetName() string { return "fixed" }
func (fixedProvider) IsEnabled() bool { return true }

func (p fixedProvider) FetchNews(ctx context.Context, ticker, topicalQuery string) ([]models.NewsItem, error) {
	return p.items, nil
}

func newOfflineService() *Service {
	dir := directory.New()
	fetcher := news.NewFetcher(failingProvider{}, news.NewFallbackGenerator(dir))
	return NewService(fetcher, NewScorer(NewAnalyzer()), dir, 10, 2)
}

func newServiceWith(p news.Provider) *Service {
	dir := directory.New()
	fetcher := news.NewFetcher(p, news.NewFallbackGenerator(dir))
	return NewService(fetcher, NewScorer(NewAnalyzer()), dir, 10, 2)
}

func TestService_Analyze_FallbackScenario(t *testing.T) {
	service := newOfflineService()

	report, err := service.Analyze(context.Background(), "MSFT", 30, "product reviews")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.Ticker != "MSFT" {
		t.Errorf("ticker = %q", report.Ticker)
	}
	if report.CompanyName != "Microsoft Corporation" {
		t.Errorf("company name = %q", report.CompanyName)
	}
	if report.SearchContext != "product reviews" {
		t.Errorf("search context = %q", report.SearchContext)
	}
	if report.NewsCount != 5 || len(report.NewsItems) != 5 {
		t.Fatalf("news count = %d (%d items), want 5", report.NewsCount, len(report.NewsItems))
	}

	for i, item := range report.NewsItems {
		if !strings.Contains(item.Headline, "Microsoft Corporation (MSFT)") {
			t.Errorf("item %d headline missing company reference: %q", i, item.Headline)
		}
		if !strings.Contains(item.Headline, "Product") && !strings.Contains(item.Headline, "Customer") {
			t.Errorf("item %d headline not product-themed: %q", i, item.Headline)
		}
		if item.SentimentScore < -1 || item.SentimentScore > 1 {
			t.Errorf("item %d score %v out of range", i, item.SentimentScore)
		}
	}

	if report.SentimentLabel != OverallLabel(report.OverallSentimentScore) {
		t.Errorf("label %q inconsistent with score %v", report.SentimentLabel, report.OverallSentimentScore)
	}
	if report.SocialMediaMentions != signals.Mentions("MSFT", 5) {
		t.Errorf("mentions = %d, want %d", report.SocialMediaMentions, signals.Mentions("MSFT", 5))
	}
	if report.AnalystRatings != signals.AnalystRatings(report.OverallSentimentScore) {
		t.Errorf("ratings %+v inconsistent with score %v", report.AnalystRatings, report.OverallSentimentScore)
	}
}

func TestService_Analyze_Idempotent(t *testing.T) {
	service := newOfflineService()
	ctx := context.Background()

	first, err := service.Analyze(ctx, "AAPL", 30, "")
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	second, err := service.Analyze(ctx, "AAPL", 30, "")
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("reports differ across identical offline runs")
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("serialized reports differ:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestService_Analyze_DefaultContextAndDays(t *testing.T) {
	service := newOfflineService()

	// days <= 0 falls back to the 30-day default instead of failing
	report, err := service.Analyze(context.Background(), "AAPL", 0, "")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.SearchContext != "AAPL stock financial news analysis" {
		t.Errorf("search context = %q", report.SearchContext)
	}
}

func TestService_Analyze_EmptyTicker(t *testing.T) {
	service := newOfflineService()

	if _, err := service.Analyze(context.Background(), "", 30, ""); err == nil {
		t.Error("expected error for empty ticker")
	}
}

func TestService_Analyze_EmptyNewsFallbackScore(t *testing.T) {
	// Successful fetch with zero items: the aggregate score comes from
	// the ticker itself, not from news text
	service := newServiceWith(fixedProvider{})

	report, err := service.Analyze(context.Background(), "AAPL", 30, "")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.NewsCount != 0 || len(report.NewsItems) != 0 {
		t.Errorf("news count = %d, want 0", report.NewsCount)
	}

	scorer := NewScorer(NewAnalyzer())
	want := round2(scorer.DeterministicSentiment("AAPL", "fallback"))
	if report.OverallSentimentScore != want {
		t.Errorf("score = %v, want %v", report.OverallSentimentScore, want)
	}

	// With zero news the mention factor bottoms out at 1
	if report.SocialMediaMentions != signals.Mentions("AAPL", 0) {
		t.Errorf("mentions = %d, want %d", report.SocialMediaMentions, signals.Mentions("AAPL", 0))
	}
}

func TestService_Analyze_CapsScoredItems(t *testing.T) {
	items := make([]models.NewsItem, 15)
	for i := range items {
		items[i] = models.NewsItem{
			Title:   fmt.Sprintf("Headline %d", i),
			Snippet: "some snippet",
			Source:  "Reuters",
			Link:    fmt.Sprintf("https://example.com/%d", i),
		}
	}
	service := newServiceWith(fixedProvider{items: items})

	report, err := service.Analyze(context.Background(), "AAPL", 30, "")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.NewsCount != 10 {
		t.Errorf("news count = %d, want 10 (excess items ignored)", report.NewsCount)
	}
}

func TestService_AnalyzeBatch(t *testing.T) {
	service := newOfflineService()

	tickers := []string{"AAPL", "MSFT", "GOOGL", "ZZZZ"}
	reports, err := service.AnalyzeBatch(context.Background(), tickers, 30, "")
	if err != nil {
		t.Fatalf("AnalyzeBatch returned error: %v", err)
	}

	if len(reports) != len(tickers) {
		t.Fatalf("got %d reports, want %d", len(reports), len(tickers))
	}

	// Output order mirrors input order
	for i, ticker := range tickers {
		if reports[i].Ticker != ticker {
			t.Errorf("reports[%d].Ticker = %q, want %q", i, reports[i].Ticker, ticker)
		}
	}

	if reports[3].CompanyName != "ZZZZ Corporation" {
		t.Errorf("unknown ticker company = %q", reports[3].CompanyName)
	}

	// Batch results match individual analysis
	single, err := service.Analyze(context.Background(), "AAPL", 30, "")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !reflect.DeepEqual(reports[0], single) {
		t.Error("batch report differs from individual report")
	}
}

package sentiment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocksage/stocksage/pkg/models"
	"github.com/stocksage/stocksage/pkg/stablehash"
)

// Per-item label thresholds. Strict inequalities: a score of exactly
// 0.1 is neutral.
const (
	itemPositiveThreshold = 0.1
	itemNegativeThreshold = -0.1
)

// Overall label thresholds, also strict
const (
	bullishThreshold = 0.3
	bearishThreshold = -0.3
)

// Scorer derives per-item sentiment from news text. All output is
// deterministic for a fixed (item, ticker, days) tuple; the only moving
// part is the reference time used for date inference.
type Scorer struct {
	analyzer *Analyzer
}

// NewScorer creates new scorer
func NewScorer(analyzer *Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// DeterministicSentiment combines the lexical polarity of text with a
// small hash-derived adjustment in [-0.10, 0.10], clamped to [-1, 1].
// The adjustment makes otherwise identical-looking texts score apart
// while staying reproducible.
func (s *Scorer) DeterministicSentiment(text, seed string) float64 {
	polarity := s.analyzer.Polarity(text)
	jitter := float64(stablehash.Mod(text, seed, 20)-10) / 100

	score := polarity + jitter
	if score > 1.0 {
		score = 1.0
	} else if score < -1.0 {
		score = -1.0
	}
	return score
}

// InferredDate derives a stable publication date for a headline: the
// same (ticker, headline, days) always maps to the same calendar day,
// between 1 and days days before now.
func (s *Scorer) InferredDate(ticker, headline string, days int, now time.Time) string {
	daysBack := stablehash.Mod(ticker+headline, "", int64(days)) + 1
	return now.AddDate(0, 0, -int(daysBack)).Format("2006-01-02")
}

// ScoreItem scores a single news item against a ticker. The second
// return value is the unrounded score, which aggregation averages over
// before its own rounding step.
func (s *Scorer) ScoreItem(item models.NewsItem, ticker string, days int, now time.Time) (models.ScoredNewsItem, float64) {
	text := item.Title + " " + item.Snippet
	score := s.DeterministicSentiment(text, ticker)

	scored := models.ScoredNewsItem{
		Headline:       item.Title,
		Source:         item.Source,
		Date:           s.InferredDate(ticker, item.Title, days, now),
		Sentiment:      itemLabel(score),
		SentimentScore: round2(score),
		URL:            item.Link,
		Snippet:        item.Snippet,
	}
	return scored, score
}

// itemLabel maps a per-item score to its label
func itemLabel(score float64) string {
	switch {
	case score > itemPositiveThreshold:
		return "positive"
	case score < itemNegativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// OverallLabel maps an aggregate score to the report-level label
func OverallLabel(score float64) string {
	switch {
	case score > bullishThreshold:
		return "Bullish"
	case score < bearishThreshold:
		return "Bearish"
	default:
		return "Neutral"
	}
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

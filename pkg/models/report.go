package models

// NewsItem represents a single raw news article, either fetched live or
// synthesized by the fallback generator. Immutable once created.
type NewsItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Link    string `json:"link"`
}

// ScoredNewsItem is a news item with derived sentiment attached
type ScoredNewsItem struct {
	Headline       string  `json:"headline"`
	Source         string  `json:"source"`
	Date           string  `json:"date"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	URL            string  `json:"url"`
	Snippet        string  `json:"snippet"`
}

// AnalystRatings holds a synthetic buy/hold/sell distribution.
// The buckets are floored independently, so they do not always sum to
// the fixed analyst total.
type AnalystRatings struct {
	Buy  int `json:"buy" db:"buy_count"`
	Hold int `json:"hold" db:"hold_count"`
	Sell int `json:"sell" db:"sell_count"`
}

// SentimentReport is the terminal artifact of one analysis run.
// It is a pure function of its inputs plus the current date; it carries
// no cross-call identity.
type SentimentReport struct {
	Ticker                string           `json:"ticker"`
	CompanyName           string           `json:"company_name"`
	SearchContext         string           `json:"search_context"`
	OverallSentimentScore float64          `json:"overall_sentiment_score"`
	SentimentLabel        string           `json:"sentiment_label"`
	NewsCount             int              `json:"news_count"`
	SocialMediaMentions   int              `json:"social_media_mentions"`
	AnalystRatings        AnalystRatings   `json:"analyst_ratings"`
	NewsItems             []ScoredNewsItem `json:"news_items"`
}

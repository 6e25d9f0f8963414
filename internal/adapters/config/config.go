package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration. Every field carries an
// explicit default so behavior never depends on ambient process state
// beyond the environment read once at load time.
type Config struct {
	Search    SearchConfig    `envconfig:"SEARCH"`
	Sentiment SentimentConfig `envconfig:"SENTIMENT"`
	Watchlist WatchlistConfig `envconfig:"WATCHLIST"`
	Database  DatabaseConfig  `envconfig:"DATABASE"`
	Telegram  TelegramConfig  `envconfig:"TELEGRAM"`
	Logging   LoggingConfig   `envconfig:"LOGGING"`
}

// SearchConfig represents the external news search API
type SearchConfig struct {
	APIKey  string        `envconfig:"SERPER_API_KEY" required:"false"`
	Timeout time.Duration `envconfig:"SEARCH_TIMEOUT" default:"10s"`
	Enabled bool          `envconfig:"SEARCH_ENABLED" default:"true"`
}

// SentimentConfig represents sentiment pipeline parameters
type SentimentConfig struct {
	DefaultDays      int `envconfig:"SENTIMENT_DEFAULT_DAYS" default:"30"`
	MaxNewsItems     int `envconfig:"SENTIMENT_MAX_NEWS_ITEMS" default:"10"`
	BatchConcurrency int `envconfig:"SENTIMENT_BATCH_CONCURRENCY" default:"4"`
}

// WatchlistConfig represents the periodic watchlist refresh
type WatchlistConfig struct {
	Tickers         []string      `envconfig:"WATCHLIST_TICKERS" default:"AAPL,MSFT,GOOGL,AMZN,NVDA"`
	RefreshInterval time.Duration `envconfig:"WATCHLIST_REFRESH_INTERVAL" default:"1h"`
}

// DatabaseConfig represents the optional report audit store
type DatabaseConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"stocksage"`
	User     string `envconfig:"DB_USER" required:"false"`
	Password string `envconfig:"DB_PASSWORD" required:"false"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// TelegramConfig represents the optional report notifier
type TelegramConfig struct {
	Enabled  bool   `envconfig:"TELEGRAM_ENABLED" default:"false"`
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Sentiment.DefaultDays < 1 {
		return fmt.Errorf("sentiment default_days must be at least 1")
	}
	if c.Sentiment.MaxNewsItems < 1 {
		return fmt.Errorf("sentiment max_news_items must be at least 1")
	}
	if c.Sentiment.BatchConcurrency < 1 {
		return fmt.Errorf("sentiment batch_concurrency must be at least 1")
	}
	if c.Search.Timeout <= 0 {
		return fmt.Errorf("search timeout must be positive")
	}

	// Optional subsystems are only validated when enabled. A missing
	// search API key is not an error: fetches degrade to fallback data.
	if c.Database.Enabled {
		if c.Database.User == "" || c.Database.Password == "" {
			return fmt.Errorf("db_user and db_password are required when database is enabled")
		}
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram bot token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram chat_id is required when telegram is enabled")
		}
	}

	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

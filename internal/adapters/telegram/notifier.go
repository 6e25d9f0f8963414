package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/stocksage/stocksage/internal/adapters/config"
	"github.com/stocksage/stocksage/pkg/logger"
	"github.com/stocksage/stocksage/pkg/models"
)

// Notifier posts sentiment report summaries to a Telegram chat
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates new Telegram notifier
func NewNotifier(cfg *config.TelegramConfig) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{
		api:    bot,
		chatID: cfg.ChatID,
	}, nil
}

// SendWatchlistSummary sends one message summarizing a refresh pass
func (n *Notifier) SendWatchlistSummary(reports []*models.SentimentReport) error {
	if len(reports) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("📊 *Watchlist sentiment refresh*\n\n")
	for _, report := range reports {
		b.WriteString(fmt.Sprintf("%s *%s* — %s (%.2f), %d articles, ~%d mentions\n",
			labelEmoji(report.SentimentLabel),
			report.Ticker,
			report.SentimentLabel,
			report.OverallSentimentScore,
			report.NewsCount,
			report.SocialMediaMentions,
		))
	}

	msg := tgbotapi.NewMessage(n.chatID, b.String())
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}

func labelEmoji(label string) string {
	switch label {
	case "Bullish":
		return "🟢"
	case "Bearish":
		return "🔴"
	default:
		return "⚪"
	}
}

package telegram

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/domain"
	"github.com/samber/oops"
)

const Method = "telegram sendMessage"

// Notifier posts digests to a Telegram channel through the Bot API
type Notifier struct {
	bot *bot.Bot
}

// New creates a Telegram notifier. The bot never polls for updates and
// skips the getMe handshake, so construction makes no network calls.
func New(token, serverURL string, timeout time.Duration) (*Notifier, error) {
	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(timeout, &http.Client{Timeout: timeout}),
	}
	if serverURL != "" {
		opts = append(opts, bot.WithServerURL(serverURL))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, oops.In("telegram").With("server_url", serverURL).Wrapf(err, "failed to create telegram bot")
	}
	return &Notifier{bot: b}, nil
}

func (n *Notifier) Method() string {
	return Method
}

// Post sends msg.Text to msg.ChannelID. API refusals come back as a failed
// DeliveryResult rather than an error.
func (n *Notifier) Post(ctx context.Context, msg *domain.Message) (domain.DeliveryResult, error) {
	sent, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: msg.ChannelID,
		Text:   msg.Text,
	})
	if err != nil {
		slog.Debug("Telegram refused message", "channel", msg.ChannelID, "error", err)
		return domain.DeliveryResult{OK: false, Error: err.Error()}, nil
	}

	slog.Debug("Telegram message sent", "channel", msg.ChannelID, "message_id", sent.ID)
	return domain.DeliveryResult{OK: true}, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/errors"
	"github.com/samber/oops"
)

// Notifier posts a message to a messaging API.
type Notifier interface {
	// Method names the API call in diagnostics, e.g. "api/chat.postMessage".
	Method() string
	Post(ctx context.Context, msg *domain.Message) (domain.DeliveryResult, error)
}

// Service delivers digests to the configured channel
type Service struct {
	notifier  Notifier
	channelID string
}

// New creates a new message service
func New(notifier Notifier, channelID string) *Service {
	return &Service{
		notifier:  notifier,
		channelID: channelID,
	}
}

// Deliver posts text to the channel. Empty text is never sent and yields a nil result.
// A response that is not explicitly ok becomes a *domain.DeliveryError.
func (s *Service) Deliver(ctx context.Context, text string) (*domain.DeliveryResult, error) {
	if text == "" {
		slog.Debug("Empty digest, nothing to deliver", "channel", s.channelID)
		return nil, nil
	}

	msg := &domain.Message{
		ChannelID: s.channelID,
		Text:      text,
		LinkNames: true,
	}

	result, err := s.notifier.Post(ctx, msg)
	if err != nil {
		return nil, oops.In("message").
			Code("delivery_transport").
			With("method", s.notifier.Method(), "channel", s.channelID).
			Wrap(fmt.Errorf("%w: %w", errors.ErrDeliveryFailed, err))
	}

	if !result.OK {
		return &result, oops.In("message").
			Code("delivery_failed").
			With("method", s.notifier.Method(), "channel", s.channelID).
			Wrap(&domain.DeliveryError{Method: s.notifier.Method(), Description: result.Error})
	}

	slog.Info("Digest delivered", "method", s.notifier.Method(), "channel", s.channelID, "bytes", len(text))
	return &result, nil
}

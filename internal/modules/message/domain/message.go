package domain

import (
	"fmt"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/errors"
)

// Message is a digest addressed to a messaging channel
type Message struct {
	ChannelID string
	Text      string
	LinkNames bool
}

// DeliveryResult is the messaging API's verdict on a posted message
type DeliveryResult struct {
	OK    bool
	Error string
}

// DeliveryError reports a message the API refused.
type DeliveryError struct {
	Method      string
	Description string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Method, e.Description)
}

func (e *DeliveryError) Unwrap() error {
	return errors.ErrDeliveryFailed
}

package errors

import "errors"

var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrMissingField     = errors.New("required config not exists")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrFeedFetch        = errors.New("feed fetch failed")
	ErrFeedParse        = errors.New("feed parse failed")
	ErrFeedMissingField = errors.New("feed is missing a required field")
	ErrDeliveryFailed   = errors.New("delivery failed")
)

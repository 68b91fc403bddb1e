package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/domain"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/errors"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/httpclient"
	"github.com/samber/oops"
)

const acceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8"

// Service fetches and parses news search feeds
type Service struct {
	client httpclient.Client
	parser *gofeed.Parser
}

// New creates a new feed service
func New(client httpclient.Client) *Service {
	return &Service{
		client: client,
		parser: gofeed.NewParser(),
	}
}

// Fetch downloads the feed at url and parses it.
func (s *Service) Fetch(ctx context.Context, url string) (*domain.Feed, error) {
	errb := oops.In("feed").With("url", url)

	resp, err := s.client.Get(ctx, url, map[string]string{"Accept": acceptHeader})
	if err != nil {
		return nil, errb.Code("feed_fetch").Wrap(fmt.Errorf("%w: %w", errors.ErrFeedFetch, err))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errb.Code("feed_fetch").
			With("status", resp.StatusCode()).
			Wrap(fmt.Errorf("%w: status %d body: %s", errors.ErrFeedFetch, resp.StatusCode(), httpclient.Snippet(resp.Body())))
	}

	feed, err := s.Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, errb.Wrap(err)
	}

	slog.Debug("Feed fetched", "url", url, "entries", len(feed.Entries), "updated_at", feed.UpdatedAt)
	return feed, nil
}

// Parse reads an RSS or Atom document.
func (s *Service) Parse(r io.Reader) (*domain.Feed, error) {
	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, oops.In("feed").Code("feed_parse").Wrap(fmt.Errorf("%w: %w", errors.ErrFeedParse, err))
	}
	return fromGofeed(parsed)
}

func fromGofeed(parsed *gofeed.Feed) (*domain.Feed, error) {
	updated := firstTime(parsed.UpdatedParsed, parsed.PublishedParsed)
	if updated == nil {
		return nil, oops.In("feed").
			Code("feed_missing_field").
			With("feed_title", parsed.Title).
			Wrap(fmt.Errorf("%w: feed has no update time", errors.ErrFeedMissingField))
	}

	feed := &domain.Feed{
		UpdatedAt: updated.UTC(),
		Entries:   make([]domain.Entry, 0, len(parsed.Items)),
	}

	for i, item := range parsed.Items {
		published := firstTime(item.PublishedParsed, item.UpdatedParsed)
		if published == nil {
			return nil, oops.In("feed").
				Code("feed_missing_field").
				With("index", i, "title", item.Title).
				Wrap(fmt.Errorf("%w: entry %d has no published time", errors.ErrFeedMissingField, i))
		}

		if missing := missingEntryFields(item); len(missing) > 0 {
			return nil, oops.In("feed").
				Code("feed_missing_field").
				With("index", i, "fields", missing).
				Wrap(fmt.Errorf("%w: entry %d has no %s", errors.ErrFeedMissingField, i, strings.Join(missing, ", ")))
		}

		feed.Entries = append(feed.Entries, domain.Entry{
			PublishedAt: published.UTC(),
			Title:       item.Title,
			Link:        item.Link,
		})
	}

	return feed, nil
}

func missingEntryFields(item *gofeed.Item) []string {
	var missing []string
	if strings.TrimSpace(item.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(item.Link) == "" {
		missing = append(missing, "link")
	}
	return missing
}

func firstTime(candidates ...*time.Time) *time.Time {
	for _, t := range candidates {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}

// Package export writes the entries of a checked feed to a local feed file,
// so the same results can be followed from a feed reader.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Formats lists the supported output formats.
var Formats = []string{"rss", "atom", "json"}

// Exporter writes checked feeds to Path in Format
type Exporter struct {
	Path   string
	Format string
}

// New creates an exporter. An unknown format is an error.
func New(path, format string) (*Exporter, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "rss"
	}
	if !lo.Contains(Formats, format) {
		return nil, oops.In("export").With("format", format).Errorf("unsupported feed format, want one of %s", strings.Join(Formats, ", "))
	}
	return &Exporter{Path: path, Format: format}, nil
}

// Generate converts a checked feed into a gorilla feed titled after clause.
func Generate(feed *domain.Feed, clause, sourceURL string) *feeds.Feed {
	out := &feeds.Feed{
		Title:       fmt.Sprintf("Google News [q=%s]", clause),
		Link:        &feeds.Link{Href: sourceURL},
		Description: fmt.Sprintf("Articles matching %q", clause),
		Updated:     feed.UpdatedAt,
	}

	out.Items = lo.Map(feed.Entries, func(e domain.Entry, _ int) *feeds.Item {
		return &feeds.Item{
			Title:   e.Title,
			Link:    &feeds.Link{Href: e.Link},
			Id:      e.Link,
			Created: e.PublishedAt,
		}
	})
	return out
}

// Render encodes feed in the exporter's format.
func (e *Exporter) Render(feed *feeds.Feed) (string, error) {
	switch e.Format {
	case "atom":
		return feed.ToAtom()
	case "json":
		return feed.ToJSON()
	default:
		return feed.ToRss()
	}
}

// Export writes the feed file, replacing any previous one.
func (e *Exporter) Export(feed *domain.Feed, clause, sourceURL string) error {
	errb := oops.In("export").With("path", e.Path, "format", e.Format)

	body, err := e.Render(Generate(feed, clause, sourceURL))
	if err != nil {
		return errb.Wrapf(err, "failed to encode feed")
	}

	tmp, err := os.CreateTemp(filepath.Dir(e.Path), ".feed-*")
	if err != nil {
		return errb.Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		return errb.Wrap(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errb.Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errb.Wrap(err)
	}
	if err := os.Rename(tmp.Name(), e.Path); err != nil {
		return errb.Wrap(err)
	}

	slog.Debug("Feed exported", "path", e.Path, "format", e.Format, "entries", len(feed.Entries))
	return nil
}

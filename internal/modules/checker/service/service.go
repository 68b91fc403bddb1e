package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/checker/domain"
	feedDomain "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/domain"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/query"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/digest"
	messageDomain "github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/domain"
	"github.com/samber/oops"
)

// FeedFetcher downloads and parses a feed
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*feedDomain.Feed, error)
}

// Deliverer posts a digest to the channel
type Deliverer interface {
	Deliver(ctx context.Context, text string) (*messageDomain.DeliveryResult, error)
}

// FeedExporter saves the checked entries as a feed file
type FeedExporter interface {
	Export(feed *feedDomain.Feed, clause, sourceURL string) error
}

// Settings are the per-run values taken from configuration.
type Settings struct {
	Word    string
	Days    int
	TZHours float64
	Labels  digest.Labels
}

// Runner executes one check: query, fetch, render, deliver, summarize.
type Runner struct {
	settings   Settings
	query      query.Builder
	fetcher    FeedFetcher
	deliverer  Deliverer
	provenance digest.Provenance
	exporter   FeedExporter
	out        io.Writer
}

// New creates a new Runner. The summary is written to out.
func New(settings Settings, qb query.Builder, fetcher FeedFetcher, deliverer Deliverer, provenance digest.Provenance, out io.Writer) *Runner {
	return &Runner{
		settings:   settings,
		query:      qb,
		fetcher:    fetcher,
		deliverer:  deliverer,
		provenance: provenance,
		out:        out,
	}
}

// SetExporter enables writing each non-empty result to a feed file.
func (r *Runner) SetExporter(e FeedExporter) {
	r.exporter = e
}

// Run performs a single check. Fetch errors abort before anything is printed.
// A delivery error is returned after the summary has been written.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) (*domain.Report, error) {
	url, clause := r.query.Build(r.settings.Word, r.settings.Days)
	slog.Debug("Checking feed", "url", url, "clause", clause, "mode", inv.Mode)

	feed, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, oops.In("checker").With("url", url).Wrap(err)
	}

	text := digest.Render(feed, digest.Options{
		Clause:     clause,
		TZHours:    r.settings.TZHours,
		Labels:     r.settings.Labels,
		Provenance: r.provenance,
	})

	report := &domain.Report{
		Invocation: inv,
		URL:        url,
		Clause:     clause,
		Entries:    len(feed.Entries),
		Digest:     text,
	}

	if r.exporter != nil && report.Entries > 0 {
		if err := r.exporter.Export(feed, clause, url); err != nil {
			slog.Warn("Failed to export feed", "error", err)
		}
	}

	var deliverErr error
	switch {
	case text == "":
		slog.Info("No entries found", "clause", clause)
	case inv.Mode == domain.ModeDryRun:
		slog.Info("Dry run, digest not delivered", "entries", report.Entries)
	default:
		result, err := r.deliverer.Deliver(ctx, text)
		deliverErr = err
		report.Delivered = err == nil && result != nil && result.OK
	}

	if err := r.writeSummary(report); err != nil && deliverErr == nil {
		return report, oops.In("checker").Wrapf(err, "failed to write summary")
	}

	return report, deliverErr
}

func (r *Runner) writeSummary(report *domain.Report) error {
	_, err := fmt.Fprintf(r.out, "Args: %s\nMode: %s\n\n%s\n",
		domain.FormatArgs(report.Invocation.Args),
		report.Invocation.Mode,
		report.Digest,
	)
	return err
}

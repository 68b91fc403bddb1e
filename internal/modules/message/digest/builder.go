// Package digest renders a feed into the plain-text message posted to the channel.
package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/domain"
)

const (
	headerSource = "Google News"
	separator    = "----------"
)

// Options control how a digest is rendered.
type Options struct {
	Clause     string
	TZHours    float64
	Labels     Labels
	Provenance Provenance
}

// Builder accumulates digest text. Every append converts timestamps to the
// builder's zone before formatting.
type Builder struct {
	sb     strings.Builder
	zone   *time.Location
	labels Labels
}

func NewBuilder(tzHours float64, labels Labels) *Builder {
	return &Builder{zone: Zone(tzHours), labels: labels}
}

// Header appends the query line and the separator.
func (b *Builder) Header(clause string, updated time.Time) *Builder {
	local := updated.In(b.zone)
	fmt.Fprintf(&b.sb, "%s [q=%s] at %s(%s)\n", headerSource, clause, FormatDateTime(local), b.labels.Label(local))
	b.sb.WriteString(separator + "\n")
	return b
}

// Entry appends one dated block followed by a blank line.
func (b *Builder) Entry(e domain.Entry) *Builder {
	local := e.PublishedAt.In(b.zone)
	fmt.Fprintf(&b.sb, "%s(%s)\n", FormatDate(local), b.labels.Label(local))
	b.sb.WriteString(e.Title + "\n")
	b.sb.WriteString(e.Link + "\n")
	b.sb.WriteString("\n")
	return b
}

// Provenance appends the trailing "Posted from" line.
func (b *Builder) Provenance(p Provenance) *Builder {
	fmt.Fprintf(&b.sb, "Posted from: %s (%s):%s\n", p.Host, p.Addr, p.Script)
	return b
}

func (b *Builder) Len() int {
	return b.sb.Len()
}

func (b *Builder) String() string {
	return b.sb.String()
}

// Render builds the digest for feed. A feed without entries renders to the
// empty string: no header and no provenance line.
func Render(feed *domain.Feed, opts Options) string {
	if feed.IsEmpty() {
		return ""
	}

	b := NewBuilder(opts.TZHours, opts.Labels).Header(opts.Clause, feed.UpdatedAt)
	for _, entry := range feed.Entries {
		b.Entry(entry)
	}
	return b.Provenance(opts.Provenance).String()
}

// FormatDate renders YYYY/M/D without zero padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// FormatDateTime renders YYYY/M/D H:MM; only the minutes are zero padded.
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s %d:%02d", FormatDate(t), t.Hour(), t.Minute())
}

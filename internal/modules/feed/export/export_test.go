package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/feed/domain"
)

func checkedFeed() *domain.Feed {
	return &domain.Feed{
		UpdatedAt: time.Date(2024, 1, 1, 4, 0, 0, 0, time.UTC),
		Entries: []domain.Entry{
			{PublishedAt: time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC), Title: "X launches Y", Link: "https://example.com/a"},
			{PublishedAt: time.Date(2023, 12, 31, 22, 0, 0, 0, time.UTC), Title: "Z acquires W", Link: "https://example.com/b"},
		},
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"", "rss", "ATOM", " json "} {
		if _, err := New("out.xml", format); err != nil {
			t.Errorf("New(%q): %v", format, err)
		}
	}
	if _, err := New("out.xml", "csv"); err == nil {
		t.Error("expected error for csv")
	}
}

func TestExport_RoundTrip(t *testing.T) {
	for _, format := range []string{"rss", "atom", "json"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "news."+format)
			e, err := New(path, format)
			if err != nil {
				t.Fatalf("new: %v", err)
			}

			if err := e.Export(checkedFeed(), "OpenAI when:1d", "https://news.google.com/rss/search?q=OpenAI"); err != nil {
				t.Fatalf("export: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			parsed, err := gofeed.NewParser().Parse(f)
			if err != nil {
				t.Fatalf("parse exported feed: %v", err)
			}
			if !strings.Contains(parsed.Title, "OpenAI when:1d") {
				t.Errorf("title = %q", parsed.Title)
			}
			if len(parsed.Items) != 2 {
				t.Fatalf("items = %d, want 2", len(parsed.Items))
			}
			if parsed.Items[0].Title != "X launches Y" || parsed.Items[1].Link != "https://example.com/b" {
				t.Errorf("items out of order: %q, %q", parsed.Items[0].Title, parsed.Items[1].Link)
			}
		})
	}
}

func TestExport_ReplacesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.xml")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	e, _ := New(path, "rss")
	if err := e.Export(checkedFeed(), "q when:1d", "https://example.com"); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("previous file content survived")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("mode = %v, want 0644 so feed readers can open it", perm)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the feed file", len(entries))
	}
}

func TestExport_MissingDirectory(t *testing.T) {
	e, _ := New(filepath.Join(t.TempDir(), "missing", "news.xml"), "rss")
	if err := e.Export(checkedFeed(), "q", "https://example.com"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

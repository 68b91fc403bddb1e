package domain

import "time"

// Feed is a parsed news search result. Entries keep the order of the source document.
type Feed struct {
	UpdatedAt time.Time `json:"updated_at"`
	Entries   []Entry   `json:"entries"`
}

// Entry is a single news item.
type Entry struct {
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
}

// IsEmpty reports whether the feed has no entries.
func (f *Feed) IsEmpty() bool {
	return f == nil || len(f.Entries) == 0
}

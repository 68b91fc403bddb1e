package query

import (
	"net/url"
	"testing"
)

func TestClause(t *testing.T) {
	if got := Clause("foo", 7); got != "foo when:7d" {
		t.Errorf("clause = %q, want %q", got, "foo when:7d")
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("https://news.google.com/rss/search", Locale{Language: "ja", Country: "JP"})

	got, clause := b.Build("foo", 7)
	want := "https://news.google.com/rss/search?q=foo%20when:7d&hl=ja&gl=JP&ceid=ja:JP"
	if got != want {
		t.Errorf("url = %q\nwant  %q", got, want)
	}
	if clause != "foo when:7d" {
		t.Errorf("clause = %q", clause)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse built url: %v", err)
	}
	if q := u.Query().Get("q"); q != "foo when:7d" {
		t.Errorf("decoded q = %q, want %q", q, "foo when:7d")
	}
}

func TestBuilder_ZeroDaysBecomesOne(t *testing.T) {
	b := NewBuilder("https://example.com/search", Locale{Language: "en", Country: "US"})

	_, clause := b.Build("OpenAI", 0)
	if clause != "OpenAI when:1d" {
		t.Errorf("clause = %q, want %q", clause, "OpenAI when:1d")
	}
}

func TestBuilder_ParamOrder(t *testing.T) {
	b := NewBuilder("", Locale{Language: "ja", Country: "JP"})
	params := b.Params("x", 1)

	keys := []string{KeyQuery, KeyLanguage, KeyCountry, KeyCEID}
	if len(params) != len(keys) {
		t.Fatalf("params = %d, want %d", len(params), len(keys))
	}
	for i, key := range keys {
		if params[i].Key != key {
			t.Errorf("params[%d] = %q, want %q", i, params[i].Key, key)
		}
	}
	if params.Get(KeyCEID) != "ja:JP" {
		t.Errorf("ceid = %q", params.Get(KeyCEID))
	}
	if params.Get("missing") != "" {
		t.Error("unknown key should return empty string")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "abcXYZ019", "abcXYZ019"},
		{"unreserved", "a-b.c_d~e", "a-b.c_d~e"},
		{"space", "a b", "a%20b"},
		{"slash and colon stay", "a/b:c", "a/b:c"},
		{"reserved", "&=+?#,;@$!", "%26%3D%2B%3F%23%2C%3B%40%24%21"},
		{"quotes", `"x'`, "%22x%27"},
		{"percent", "100%", "100%25"},
		{"utf-8", "日本", "%E6%97%A5%E6%9C%AC"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParams_EncodeJapaneseQuery(t *testing.T) {
	b := NewBuilder("https://news.google.com/rss/search", Locale{Language: "ja", Country: "JP"})
	got, _ := b.Build("生成AI OR LLM", 3)
	want := "https://news.google.com/rss/search?q=%E7%94%9F%E6%88%90AI%20OR%20LLM%20when:3d&hl=ja&gl=JP&ceid=ja:JP"
	if got != want {
		t.Errorf("url = %q\nwant  %q", got, want)
	}
}

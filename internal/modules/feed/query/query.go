// Package query builds Google News search URLs.
package query

import (
	"strconv"
	"strings"
)

const (
	KeyQuery    = "q"
	KeyLanguage = "hl"
	KeyCountry  = "gl"
	KeyCEID     = "ceid"
)

// safeChars pass through encoding literally; the search endpoint expects
// "when:7d" and "ja:JP" unescaped.
const safeChars = "/:"

// Locale is the language/country pair sent with every search.
type Locale struct {
	Language string
	Country  string
}

// CEID returns the combined edition id, e.g. "ja:JP".
func (l Locale) CEID() string {
	return l.Language + ":" + l.Country
}

// Param is one key/value pair; Params keep insertion order.
type Param struct {
	Key   string
	Value string
}

type Params []Param

// Get returns the first value for key.
func (p Params) Get(key string) string {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// Encode joins the pairs with '&' in order, percent-encoding keys and values.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(kv.Key))
		b.WriteByte('=')
		b.WriteString(Escape(kv.Value))
	}
	return b.String()
}

// Clause renders the search term with its lookback window.
func Clause(word string, days int) string {
	return word + " when:" + strconv.Itoa(days) + "d"
}

// Builder composes search URLs against BaseURL.
type Builder struct {
	BaseURL string
	Locale  Locale
}

func NewBuilder(baseURL string, locale Locale) Builder {
	return Builder{BaseURL: baseURL, Locale: locale}
}

// Params returns the ordered query parameters for a search. Days below 1 are treated as 1.
func (b Builder) Params(word string, days int) Params {
	if days < 1 {
		days = 1
	}
	return Params{
		{Key: KeyQuery, Value: Clause(word, days)},
		{Key: KeyLanguage, Value: b.Locale.Language},
		{Key: KeyCountry, Value: b.Locale.Country},
		{Key: KeyCEID, Value: b.Locale.CEID()},
	}
}

// Build returns the full search URL and the query clause used in it.
func (b Builder) Build(word string, days int) (string, string) {
	params := b.Params(word, days)
	return b.BaseURL + "?" + params.Encode(), params.Get(KeyQuery)
}

// Escape percent-encodes s byte-wise. Only unreserved characters
// (ALPHA / DIGIT / "-" / "." / "_" / "~") and safeChars are left as is;
// a space becomes "%20".
func Escape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(safeChars, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// Package httpclient wraps resty so the feed fetcher and the messaging
// transports share one timeout and User-Agent policy.
package httpclient

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the subset of HTTP verbs the checker needs.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error)
	PostForm(ctx context.Context, url string, form map[string]string) (*resty.Response, error)
}

type restyClient struct {
	client *resty.Client
}

// NewRestyClient returns a Client with the given timeout and User-Agent.
func NewRestyClient(timeout time.Duration, userAgent string) Client {
	c := resty.New().SetTimeout(timeout)
	if ua := strings.TrimSpace(userAgent); ua != "" {
		c.SetHeader("User-Agent", ua)
	}
	return &restyClient{client: c}
}

func (c *restyClient) Get(ctx context.Context, url string, headers map[string]string) (*resty.Response, error) {
	req := c.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	return req.Get(url)
}

func (c *restyClient) PostForm(ctx context.Context, url string, form map[string]string) (*resty.Response, error) {
	return c.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(url)
}

// Snippet trims a response body for use in error messages.
func Snippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}

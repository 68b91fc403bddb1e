package slack

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/reshetovitsme/slack-news-checker-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-news-checker-bot/internal/shared/httpclient"
	"github.com/samber/oops"
)

const Method = "api/chat.postMessage"

// Client posts messages through Slack's chat.postMessage Web API method
type Client struct {
	http   httpclient.Client
	apiURL string
	token  string
}

// New creates a new Slack client
func New(http httpclient.Client, apiURL, token string) *Client {
	return &Client{
		http:   http,
		apiURL: apiURL,
		token:  token,
	}
}

func (c *Client) Method() string {
	return Method
}

type postMessageResponse struct {
	OK    *bool  `json:"ok"`
	Error string `json:"error"`
}

// Post sends msg as a form-encoded request. Only an explicit "ok": true is a success.
func (c *Client) Post(ctx context.Context, msg *domain.Message) (domain.DeliveryResult, error) {
	form := map[string]string{
		"token":      c.token,
		"channel":    msg.ChannelID,
		"link_names": strconv.FormatBool(msg.LinkNames),
		"text":       msg.Text,
	}

	resp, err := c.http.PostForm(ctx, c.apiURL, form)
	if err != nil {
		return domain.DeliveryResult{}, oops.In("slack").With("url", c.apiURL).Wrap(err)
	}

	var body postMessageResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return domain.DeliveryResult{}, oops.In("slack").
			With("url", c.apiURL, "status", resp.StatusCode()).
			Wrapf(err, "decode %s response: %s", Method, httpclient.Snippet(resp.Body()))
	}

	result := domain.DeliveryResult{
		OK:    body.OK != nil && *body.OK,
		Error: body.Error,
	}
	if !result.OK && result.Error == "" {
		if body.OK == nil {
			result.Error = "response has no ok field"
		} else {
			result.Error = "unknown_error"
		}
	}
	return result, nil
}

// Package mailer provides a client for the transactional email API.
//
// Like the WhatsApp client, it runs in simulation mode when credentials are
// absent: intended messages are logged and reported as sent.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/greenfield-grocer/notifier/pkg/backoff"
)

const (
	defaultRetries = 3
	requestTimeout = 10 * time.Second
	backoffStep    = time.Second
)

// Client represents a transactional email API client.
type Client struct {
	apiURL string
	token  string
	from   string // verified from-address

	retries int
	step    time.Duration
	client  *http.Client
	live    bool
}

// NewClient creates a new email Client. The client is live only when the API
// URL, token and from-address are all present.
func NewClient(apiURL, token, from string, retries int) *Client {
	if retries <= 0 {
		retries = defaultRetries
	}

	return &Client{
		apiURL:  apiURL,
		token:   token,
		from:    from,
		retries: retries,
		step:    backoffStep,
		client:  &http.Client{Timeout: requestTimeout},
		live:    apiURL != "" && token != "" && from != "",
	}
}

// sendEmailRequest represents the payload for the email API.
type sendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send delivers an HTML email to the given address, retrying with linear
// backoff on failure.
func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	if !c.live {
		zlog.Logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("email not configured, logging message instead")
		return nil
	}

	payload := sendEmailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	}

	return backoff.Linear(c.retries, c.step, func() error {
		return c.post(ctx, payload)
	})
}

// post performs a single outbound API call.
func (c *Client) post(ctx context.Context, payload sendEmailRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API error: %s: %s", resp.Status, respBody)
	}

	return nil
}

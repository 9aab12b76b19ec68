// Package whatsapp provides a client for the WhatsApp messaging API.
//
// It sends plain text messages and interactive polls to customer phone
// numbers. When the API credentials are not configured the client runs in
// simulation mode: messages are logged instead of delivered and every send
// reports success, so the rest of the system behaves the same in
// environments without a live provider account.
package whatsapp

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

	// maxOptionLength is the provider's documented limit for the display
	// text of a single poll option.
	maxOptionLength = 100
)

// Client represents a WhatsApp API client used to send notifications.
type Client struct {
	apiURL  string
	token   string
	phoneID string // sender phone number identifier

	retries int
	step    time.Duration
	client  *http.Client
	live    bool
}

// NewClient creates a new WhatsApp Client. The client is live only when the
// API URL, token and sender phone ID are all present; otherwise it runs in
// simulation mode.
func NewClient(apiURL, token, phoneID string, retries int) *Client {
	if retries <= 0 {
		retries = defaultRetries
	}

	return &Client{
		apiURL:  apiURL,
		token:   token,
		phoneID: phoneID,
		retries: retries,
		step:    backoffStep,
		client:  &http.Client{Timeout: requestTimeout},
		live:    apiURL != "" && token != "" && phoneID != "",
	}
}

// sendMessageRequest represents the payload for a plain text message.
type sendMessageRequest struct {
	To   string   `json:"to"`
	Type string   `json:"type"`
	Text textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// sendPollRequest represents the payload for an interactive poll message.
type sendPollRequest struct {
	To   string   `json:"to"`
	Type string   `json:"type"`
	Poll pollBody `json:"poll"`
}

type pollBody struct {
	Question             string       `json:"question"`
	Options              []pollOption `json:"options"`
	AllowMultipleAnswers bool         `json:"allow_multiple_answers"`
}

type pollOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SendText sends a plain text message to the given phone number, retrying
// with linear backoff on failure.
func (c *Client) SendText(ctx context.Context, to, text string) error {
	if !c.live {
		zlog.Logger.Info().
			Str("to", to).
			Str("text", text).
			Msg("whatsapp not configured, logging message instead")
		return nil
	}

	payload := sendMessageRequest{
		To:   to,
		Type: "text",
		Text: textBody{Body: text},
	}

	return backoff.Linear(c.retries, c.step, func() error {
		return c.post(ctx, payload)
	})
}

// SendPoll sends an interactive poll to the given phone number. Option
// display text is truncated to the provider limit and every option gets a
// stable synthetic identifier (opt_0, opt_1, ...).
func (c *Client) SendPoll(ctx context.Context, to, question string, options []string, allowMultiple bool) error {
	if !c.live {
		zlog.Logger.Info().
			Str("to", to).
			Str("question", question).
			Int("options", len(options)).
			Msg("whatsapp not configured, logging poll instead")
		return nil
	}

	opts := make([]pollOption, 0, len(options))
	for i, title := range options {
		// The provider limit counts characters, so truncate on rune
		// boundaries to keep multi-byte titles valid UTF-8.
		if r := []rune(title); len(r) > maxOptionLength {
			title = string(r[:maxOptionLength])
		}

		opts = append(opts, pollOption{
			ID:    fmt.Sprintf("opt_%d", i),
			Title: title,
		})
	}

	payload := sendPollRequest{
		To:   to,
		Type: "poll",
		Poll: pollBody{
			Question:             question,
			Options:              opts,
			AllowMultipleAnswers: allowMultiple,
		},
	}

	return backoff.Linear(c.retries, c.step, func() error {
		return c.post(ctx, payload)
	})
}

// post performs a single outbound API call.
func (c *Client) post(ctx context.Context, payload interface{}) error {
	url := fmt.Sprintf("%s/%s/messages", c.apiURL, c.phoneID)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
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
		return fmt.Errorf("whatsapp API error: %s: %s", resp.Status, respBody)
	}

	return nil
}

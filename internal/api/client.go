package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.sendcast.io/v1"

const defaultTimeout = 30 * time.Second

// Client talks to the Sendcast API. Calls either return typed results
// or an *Error; no retries happen at this layer.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (self-hosted or staging).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client with the given credential pair.
func New(apiKey, apiSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiEnvelope is the wire shape every endpoint responds with.
type apiEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one authenticated request and decodes data into out.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	if c.apiKey == "" {
		return &Error{Kind: KindAuthRequired, Message: "not logged in: run 'sendcast login' first"}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Api-Secret", c.apiSecret)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Error{Kind: KindTimeout, Message: "request timed out"}
		}
		return &Error{Kind: KindAPI, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindAPI, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	var env apiEnvelope
	_ = json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		if env.Error != nil {
			msg = env.Error.Message
		}
		return translateStatus(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindAPI, Message: fmt.Sprintf("failed to parse response: %v", err)}
		}
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: KindAPI, Message: fmt.Sprintf("failed to parse response: %v", err)}
	}
	return nil
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded)
}

// Account fetches the authenticated account. Used by login to validate
// credentials before persisting them.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	var acct Account
	if err := c.do(ctx, http.MethodGet, "/account", nil, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

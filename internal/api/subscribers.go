package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// ImportSubscribers submits a whole batch to the bulk import endpoint.
// The server deduplicates by batch ID, so a resubmitted batch is a no-op.
func (c *Client) ImportSubscribers(ctx context.Context, records []ImportRecord) (*ImportResult, error) {
	batch := ImportBatch{
		BatchID:     uuid.NewString(),
		Subscribers: records,
	}
	var result ImportResult
	if err := c.do(ctx, http.MethodPost, "/subscribers/import", batch, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Subscribe adds a single email to the list (or reactivates it).
func (c *Client) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	var sub Subscriber
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/subscribers", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Unsubscribe marks a subscriber unsubscribed. Irreversible from the
// subscriber's point of view without a new opt-in.
func (c *Client) Unsubscribe(ctx context.Context, email string) error {
	endpoint := fmt.Sprintf("/subscribers/%s/unsubscribe", url.PathEscape(email))
	return c.do(ctx, http.MethodPost, endpoint, nil, nil)
}

// Suppress adds an email to the suppression list so it is never mailed
// again, independent of subscription state.
func (c *Client) Suppress(ctx context.Context, email string) error {
	endpoint := fmt.Sprintf("/subscribers/%s/suppress", url.PathEscape(email))
	return c.do(ctx, http.MethodPost, endpoint, nil, nil)
}

// GetSubscriber fetches one subscriber by email.
func (c *Client) GetSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	var sub Subscriber
	endpoint := fmt.Sprintf("/subscribers/%s", url.PathEscape(email))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubscribers fetches one page of subscribers, optionally filtered
// by state (active, unsubscribed, suppressed, ...).
func (c *Client) ListSubscribers(ctx context.Context, state string, page, pageSize int) (*Page[Subscriber], error) {
	params := url.Values{}
	if state != "" {
		params.Set("state", state)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	endpoint := "/subscribers"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var result Page[Subscriber]
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

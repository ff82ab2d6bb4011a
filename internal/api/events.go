package api

import (
	"context"
	"net/http"
	"time"
)

// TrackEvent records a custom event against a subscriber.
func (c *Client) TrackEvent(ctx context.Context, email, name string, properties map[string]string) error {
	event := Event{
		Email:      email,
		Name:       name,
		Properties: properties,
		OccurredAt: time.Now().UTC(),
	}
	return c.do(ctx, http.MethodPost, "/events", event, nil)
}

// GetAccountStats fetches the account-wide dashboard summary.
func (c *Client) GetAccountStats(ctx context.Context) (*AccountStats, error) {
	var stats AccountStats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListBroadcasts fetches one page of broadcasts, newest first.
func (c *Client) ListBroadcasts(ctx context.Context, page, pageSize int) (*Page[Broadcast], error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	endpoint := "/broadcasts"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var result Page[Broadcast]
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBroadcast fetches one broadcast by ID.
func (c *Client) GetBroadcast(ctx context.Context, id string) (*Broadcast, error) {
	var b Broadcast
	endpoint := fmt.Sprintf("/broadcasts/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBroadcastStats fetches engagement numbers for one broadcast.
func (c *Client) GetBroadcastStats(ctx context.Context, id string) (*BroadcastStats, error) {
	var stats BroadcastStats
	endpoint := fmt.Sprintf("/broadcasts/%s/stats", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

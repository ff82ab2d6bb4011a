package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTags fetches all tags on the account.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a new tag by name.
func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	var tag Tag
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/tags", body, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag and detaches it from every subscriber.
func (c *Client) DeleteTag(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("/tags/%s", url.PathEscape(name))
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// AddTag attaches a tag to one subscriber.
func (c *Client) AddTag(ctx context.Context, email, tag string) error {
	endpoint := fmt.Sprintf("/subscribers/%s/tags", url.PathEscape(email))
	body := map[string]string{"tag": tag}
	return c.do(ctx, http.MethodPost, endpoint, body, nil)
}

// RemoveTag detaches a tag from one subscriber.
func (c *Client) RemoveTag(ctx context.Context, email, tag string) error {
	endpoint := fmt.Sprintf("/subscribers/%s/tags/%s", url.PathEscape(email), url.PathEscape(tag))
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

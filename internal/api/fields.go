package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListFields fetches all custom field definitions.
func (c *Client) ListFields(ctx context.Context) ([]Field, error) {
	var fields []Field
	if err := c.do(ctx, http.MethodGet, "/fields", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// CreateField defines a new custom field.
func (c *Client) CreateField(ctx context.Context, key, label, fieldType string) (*Field, error) {
	var field Field
	body := map[string]string{"key": key, "label": label, "type": fieldType}
	if err := c.do(ctx, http.MethodPost, "/fields", body, &field); err != nil {
		return nil, err
	}
	return &field, nil
}

// DeleteField removes a field definition and its values on every subscriber.
func (c *Client) DeleteField(ctx context.Context, key string) error {
	endpoint := fmt.Sprintf("/fields/%s", url.PathEscape(key))
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

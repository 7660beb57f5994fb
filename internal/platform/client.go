// Package platform is a thin client for the commerce platform's admin API.
// The reconciliation jobs treat every call here as fire-and-forget: failures
// are logged by the caller and never written back into core state beyond
// the explicit fixed/used flags.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func New(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// StatusError reports a non-2xx platform response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform returned status %d: %s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("X-Platform-Access-Token", c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

// AddCustomerTags appends tags to a platform customer record.
func (c *Client) AddCustomerTags(ctx context.Context, customerID string, tags []string) error {
	payload := map[string]any{"tags": tags}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/customers/%s/tags", customerID), payload)
}

// ArchiveProduct archives (unpublishes) a platform product.
func (c *Client) ArchiveProduct(ctx context.Context, productID int64) error {
	payload := map[string]any{"status": "archived"}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", productID), payload)
}

// DeactivateDiscount disables a platform discount code. A 404 is treated as
// success so re-runs of the coupon migration stay idempotent.
func (c *Client) DeactivateDiscount(ctx context.Context, discountID string) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/discounts/%s", discountID), nil)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

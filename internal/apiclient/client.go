package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"staybook/internal/domain"
)

// IdempotencyHeader carries the per-session request id on booking writes.
const IdempotencyHeader = "Idempotency-Key"

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Client talks to the booking backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for baseURL. A zero timeout leaves requests unbounded
// apart from the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ListReviews fetches the ordered review list of one property.
func (c *Client) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	path := "/api/properties/" + url.PathEscape(propertyID) + "/reviews"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode}
	}

	var reviews []domain.Review
	if err := json.NewDecoder(resp.Body).Decode(&reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// CreateBooking posts the full field record. The response body is not inspected.
func (c *Client) CreateBooking(ctx context.Context, fields domain.BookingFields, requestID string) error {
	const path = "/api/bookings"

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(IdempotencyHeader, requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPost, Path: path, Code: resp.StatusCode}
	}
	return nil
}

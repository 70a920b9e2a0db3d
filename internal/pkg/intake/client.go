package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
)

var ErrEndpointNotConfigured = errors.New("intake endpoint is not configured")

// Client posts records to the intake relay. There are no retries and no
// idempotency key; a failing relay trips the breaker so requests fail fast.
type Client struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker[*http.Response]
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "intake-relay",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		client:   httpClient,
		breaker:  cb,
	}
}

func NewClientFromEnv() *Client {
	return NewClient(env.GetEnv("INTAKE_ENDPOINT", ""), nil)
}

// Send posts rec once. Any non-2xx answer is an error.
func (c *Client) Send(ctx context.Context, rec Record) error {
	if c.endpoint == "" {
		return ErrEndpointNotConfigured
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode intake record: %w", err)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		r, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		if r.StatusCode < 200 || r.StatusCode >= 300 {
			snippet, _ := io.ReadAll(io.LimitReader(r.Body, 512))
			r.Body.Close()
			return nil, fmt.Errorf("intake relay returned status=%d body=%s", r.StatusCode, string(snippet))
		}
		return r, nil
	})
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

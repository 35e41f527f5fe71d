package agent

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client talks to a Manus-style agent backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client with no request timeout. Streaming exchanges
// can run for as long as the agent takes; cancellation happens through
// the request context.
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, 0)
}

// NewClientWithTimeout creates a client with a fixed request timeout
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ping checks that the backend is reachable
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	return nil
}

package apigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"collab-dashboard/pkg/log"
)

// Config holds the connection settings for the remote REST API.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	RatePerSec  float64 // <= 0 disables client-side limiting
	Burst       int
}

// Client is the HTTP wrapper for the remote REST API.
// All resource wrappers and the generic Call share its transport and limiter.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	l          log.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config, l log.Logger) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSec > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: newHTTPClient(cfg.AccessToken, cfg.Timeout),
		limiter:    limiter,
		l:          l,
	}
}

// WithToken returns a client that authenticates as a different caller.
// The rate limiter is shared with the receiver.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.httpClient = newHTTPClient(token, c.timeout)
	return &clone
}

func newHTTPClient(token string, timeout time.Duration) *http.Client {
	if token == "" {
		return &http.Client{Timeout: timeout}
	}
	hc := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	hc.Timeout = timeout
	return hc
}

// Call performs a request against path and returns the raw response body.
// It is the escape hatch for endpoints without a dedicated wrapper.
// An empty 2xx body yields (nil, nil); a non-2xx status yields an *APIError.
func (c *Client) Call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("apigateway: rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apigateway: failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("apigateway: failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.Warnf(ctx, "apigateway.Call %s %s: %v", method, path, err)
		return nil, fmt.Errorf("apigateway: failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apigateway: failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, raw)
		c.l.Debugf(ctx, "apigateway.Call %s %s: %d %s", method, path, resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
	"go.uber.org/zap"
)

// Client is the one HTTP client shared by every endpoint operation. It is
// read-only after construction: a fixed base URL, an optional bearer key,
// a bounded timeout, and a capped retry count.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	retries    int
	userAgent  string
	logger     *zap.Logger
}

func New(baseURL, apiKey string, timeout time.Duration, retries int, logger *zap.Logger) *Client {
	if retries < 0 {
		retries = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		retries:    retries,
		userAgent:  "plugin-dexpaprika/1.0",
		logger:     logger,
	}
}

// Get issues a GET against path and returns the raw response body. Retries
// apply only when no HTTP response was received at all; any status code,
// including 5xx, is terminal. Logging here is advisory only.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, derr.Wrap(derr.CodeUnavailable, "request cancelled", ctx.Err())
			case <-time.After(backoff(attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, derr.Wrap(derr.CodeInternal, "build request", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = mapNetError(err)
			c.logger.Debug("request failed",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		c.logger.Debug("request complete",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)),
		)
		if readErr != nil {
			return nil, derr.Wrap(derr.CodeUnavailable, "read API response", readErr)
		}

		if err := classifyStatus(resp.StatusCode, body); err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, derr.WithStatus(derr.CodeUnavailable, resp.StatusCode, "no data received from API")
		}
		return body, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, derr.New(derr.CodeUnavailable, "request failed")
}

func classifyStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return derr.WithStatus(derr.CodeNotFound, status, "requested resource not found")
	case status == http.StatusTooManyRequests:
		return derr.WithStatus(derr.CodeRateLimited, status, "rate limit exceeded, try again later")
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return derr.WithStatus(derr.CodeAuth, status, "API authentication failed")
	default:
		return derr.WithStatus(derr.CodeUpstream, status,
			fmt.Sprintf("API error: %d - %s", status, upstreamMessage(body, status)))
	}
}

// upstreamMessage pulls the upstream's own error text out of the body when
// it is JSON, falling back to the standard status text.
func upstreamMessage(body []byte, status int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(status)
}

func mapNetError(err error) error {
	if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
		return derr.Wrap(derr.CodeUnavailable, "unexpected error: request timed out", err)
	}
	return derr.Wrap(derr.CodeUnavailable, "unexpected error: request failed", err)
}

func backoff(attempt int) time.Duration {
	base := 120 * time.Millisecond
	d := base * time.Duration(1<<uint(attempt-1))
	if d > 2*time.Second {
		d = 2 * time.Second
	}
	jitter := time.Duration(rand.Intn(75)) * time.Millisecond
	return d + jitter
}

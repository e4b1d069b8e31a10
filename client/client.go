// Package client is a stateless adapter for the cache server's wire
// protocol. It formats requests, parses responses, and holds no cache
// state of its own.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to one cache server.
type Client struct {
	r *resty.Client
}

// Option customizes the client at construction.
type Option func(*resty.Client)

// WithTimeout bounds each request round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithHTTPClient substitutes the transport, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *resty.Client) { c.SetTransport(hc.Transport) }
}

// New creates a client for the server at baseURL (e.g.
// "http://localhost:4022").
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().SetBaseURL(baseURL)
	for _, o := range opts {
		o(rc)
	}
	return &Client{r: rc}
}

type valueDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Set stores value under key. A server that cannot fit the value still
// answers 200; the only way to observe the drop is a Get miss.
func (c *Client) Set(ctx context.Context, key, value string) error {
	resp, err := c.r.R().SetContext(ctx).Put("/" + key + "/" + value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("set %q: server returned %s", key, resp.Status())
	}
	return nil
}

// Get fetches the value under key. ok is false on a miss.
func (c *Client) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	var dto valueDTO
	resp, err := c.r.R().SetContext(ctx).SetResult(&dto).Get("/" + key)
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return dto.Value, true, nil
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("get %q: server returned %s", key, resp.Status())
	}
}

// Del removes the entry under key, reporting whether the server held
// one.
func (c *Client) Del(ctx context.Context, key string) (bool, error) {
	resp, err := c.r.R().SetContext(ctx).Delete("/" + key)
	if err != nil {
		return false, fmt.Errorf("del %q: %w", key, err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("del %q: server returned %s", key, resp.Status())
	}
}

// SpaceUsed reports the server's total stored value bytes.
func (c *Client) SpaceUsed(ctx context.Context) (uint64, error) {
	resp, err := c.r.R().SetContext(ctx).Head("/")
	if err != nil {
		return 0, fmt.Errorf("space_used: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("space_used: server returned %s", resp.Status())
	}
	n, err := strconv.ParseUint(resp.Header().Get("Space-Used"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("space_used: bad Space-Used header: %w", err)
	}
	return n, nil
}

// Reset removes every entry on the server.
func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.r.R().SetContext(ctx).Post("/reset")
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("reset: server returned %s", resp.Status())
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tgienger/vcli/internal/config"
)

const apiPrefix = "/api/v1"

// Client talks to the Vikunja REST API. GET responses go through a
// read-through cache for the lifetime of the client.
type Client struct {
	host  string
	token string
	http  *http.Client
	cache *Cache
	log   logrus.FieldLogger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) { c.log = logger }
}

// WithCacheSize sets how many GET bodies are kept
func WithCacheSize(size int) Option {
	return func(c *Client) { c.cache = NewCache(size) }
}

// NewClient creates a client for the instance described by cfg. An empty
// token is allowed for the login call.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		host:  strings.TrimRight(cfg.Host, "/"),
		token: strings.TrimSpace(cfg.Token),
		http:  &http.Client{},
		cache: NewCache(DefaultCacheSize),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the instance base URL without the API prefix
func (c *Client) Host() string {
	return c.host
}

func (c *Client) get(ctx context.Context, path string) (string, error) {
	body, hit, err := c.cache.GetOrFetch(path, func() (string, error) {
		return c.do(ctx, http.MethodGet, path, nil)
	})
	if hit {
		c.log.WithField("path", path).Debug("cache hit")
	}
	return body, err
}

func (c *Client) put(ctx context.Context, path string, payload any) (string, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) delete(ctx context.Context, path string) (string, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// do performs one request and returns the raw response body
func (c *Client) do(ctx context.Context, method, path string, payload any) (string, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+apiPrefix+path, body)
	if err != nil {
		return "", &TransportError{Method: method, Path: path, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	entry := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Debug("request failed")
		return "", &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("request")

	if resp.StatusCode >= 400 {
		return "", &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	return string(data), nil
}

func decode[T any](path, body string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return out, &DecodeError{Path: path, Err: err}
	}
	return out, nil
}

// decodeList treats an empty body or a JSON null as an empty list; the API
// answers null for some out-of-range pages.
func decodeList[T any](path, body string) ([]T, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	return decode[[]T](path, body)
}

func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	out, err := decode[T](path, body)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[T](path, body)
}

func sendOne[T any](path, body string, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	out, err := decode[T](path, body)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

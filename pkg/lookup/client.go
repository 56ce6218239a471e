// Package lookup queries the remote animals API for records matching a name.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-animalgen/pkg/animal"
)

const (
	DefaultBaseURL = "https://api.api-ninjas.com/v1/animals"
	DefaultTimeout = 20 * time.Second

	// QueryParam carries the search term.
	QueryParam = "name"
	// HeaderAPIKey carries the credential.
	HeaderAPIKey = "X-Api-Key"
)

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the values a Client needs. APIKey is required.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient injects the transport used for requests.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client looks up animals by name.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    Doer
	logger  *zap.Logger
}

// New validates cfg and constructs a Client. A missing API key yields a
// *ConfigurationError wrapping ErrMissingCredential.
func New(cfg Config, options ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Field: "api_key", Err: ErrMissingCredential}
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, &ConfigurationError{Field: "base_url", Err: err}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Search issues one GET request for term. Non-success statuses return a
// *RequestFailure. A body whose top level is not a JSON array yields an empty
// collection.
func (c *Client) Search(ctx context.Context, term string) ([]animal.Record, error) {
	if c == nil || c.apiKey == "" {
		return nil, &ConfigurationError{Field: "api_key", Err: ErrMissingCredential}
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint, err := c.endpoint(term)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup: build request: %w", err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup: request %s: %w", c.baseURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("lookup request failed",
			zap.String("term", term),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, &RequestFailure{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        c.baseURL,
		}
	}

	c.logger.Info("lookup response",
		zap.String("term", term),
		zap.Int("status_code", resp.StatusCode),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("lookup: read body: %w", err)
	}
	return c.decode(body)
}

func (c *Client) endpoint(term string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("lookup: parse base url: %w", err)
	}
	query := u.Query()
	query.Set(QueryParam, term)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (c *Client) decode(body []byte) ([]animal.Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("lookup: decode response: %w", err)
	}

	records, err := animal.FromValue(doc)
	if errors.Is(err, animal.ErrNotCollection) {
		c.logger.Warn("lookup response is not a list, using empty result",
			zap.String("shape", fmt.Sprintf("%T", doc)),
		)
		return []animal.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Package http provides HTTP utilities for fetching remote resources.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/webpalette/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "webpalette"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes bounds the size of a response body.
	DefaultMaxBytes int64 = 20 << 20

	// browserUserAgent is sent by default; some sites serve stripped pages to unknown agents.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// ErrBodyTooLarge is returned when a response body exceeds FetchOptions.MaxBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, http.StatusText(e.Code))
}

// DefaultUserAgent returns the User-Agent used when none is configured.
func DefaultUserAgent() string {
	return fmt.Sprintf("%s %s/%s", browserUserAgent, UserAgentName, version.Version)
}

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string

	// MaxBytes bounds the response body. If zero, DefaultMaxBytes is used.
	MaxBytes int64

	// Client is used instead of a fresh client when set.
	Client *http.Client
}

// Fetch retrieves content from a URL with context and timeout support.
// It sets the User-Agent header and treats any status other than 200 as an error.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	maxBytes := opts.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, maxBytes)
	}

	return data, nil
}

// FetchText retrieves a URL and returns its body as a string.
func FetchText(ctx context.Context, url string, opts FetchOptions) (string, error) {
	data, err := Fetch(ctx, url, opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

// Client is a Fetcher backed by Fetch.
type Client struct {
	// Options are applied to every request; Timeout is replaced per call when non-zero.
	Options FetchOptions
}

// NewClient creates a Client with the given User-Agent. An empty agent uses DefaultUserAgent.
func NewClient(userAgent string) *Client {
	return &Client{Options: FetchOptions{UserAgent: userAgent}}
}

// FetchBytes implements Fetcher.
func (c *Client) FetchBytes(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	opts := c.Options
	if timeout > 0 {
		opts.Timeout = timeout
	}
	return Fetch(ctx, url, opts)
}

package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	requestTimeout = 15 * time.Second

	// maxBodyBytes caps how much of a page we read. Company sites that
	// serve bigger pages than this are serving assets, not copy.
	maxBodyBytes = 2 << 20
)

// Client fetches pages politely: browser-like headers, a shared rate
// limiter across all requests, and a hard timeout per request.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a fetching client.
// The limiter spaces requests out the same way a human clicking through
// a site would; crawl targets are third-party marketing sites, not APIs.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
// Tests use this to point at local servers.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRateLimiter replaces the request limiter.
func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}

// WithClientLogger sets a custom logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NormalizeURL ensures the URL carries a scheme, defaulting to https.
func NormalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "https://" + url
	}
	return url
}

// BaseURL reduces a URL to its scheme and host.
func BaseURL(url string) string {
	url = NormalizeURL(url)
	parts := strings.SplitN(url, "/", 4)
	if len(parts) < 3 {
		return url
	}
	return strings.Join(parts[:3], "/")
}

// Fetch retrieves the body of a page. Any non-200 status is an error;
// the callers treat a failed fetch as "page absent" and move on.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	url = NormalizeURL(url)

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	// Plenty of marketing sites serve bot traffic an empty shell, so the
	// request carries ordinary browser headers.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d for %s", ErrFetchFailed, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return string(body), nil
}

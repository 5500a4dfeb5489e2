package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/model"
)

// Client fetches language statistics from the GitHub REST API.
type Client struct {
	// baseURL is the API root without trailing slash (e.g., https://api.github.com).
	baseURL string

	// token is sent as a bearer token when non-empty.
	token string

	// accept is the Accept header value selecting the API version.
	accept string

	// userAgent is the User-Agent header value.
	userAgent string

	// maxBodySize limits how many bytes of the response are read.
	maxBodySize int64

	// timeout is applied to the HTTP client built by NewClient.
	timeout time.Duration

	// proxyAddress routes requests through a SOCKS5 proxy when set.
	proxyAddress string

	// httpClient overrides the HTTP client built from the options above.
	httpClient *http.Client

	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API root URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithToken sets the access token. An empty token sends no Authorization header.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithAcceptHeader sets the Accept header value.
func WithAcceptHeader(accept string) Option {
	return func(c *Client) {
		c.accept = accept
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMaxBodySize sets the maximum number of response bytes read.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithProxy routes requests through the SOCKS5 proxy at address ("host:port").
// It is ignored when WithHTTPClient is also given.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client with the given options.
// It fails only when a proxy is configured and the dialer cannot be created.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:     config.DefaultAPIBaseURL,
		accept:      config.DefaultAcceptHeader,
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
		timeout:     config.DefaultTimeout,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.httpClient == nil {
		httpClient, err := newHTTPClient(c.proxyAddress, c.timeout)
		if err != nil {
			return nil, err
		}
		c.httpClient = httpClient
	}

	return c, nil
}

// NewClientFromConfig creates a Client from a validated configuration.
func NewClientFromConfig(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	return NewClient(
		WithBaseURL(cfg.APIBaseURL),
		WithToken(cfg.Token),
		WithAcceptHeader(cfg.AcceptHeader),
		WithUserAgent(cfg.UserAgent),
		WithTimeout(cfg.Timeout),
		WithMaxBodySize(cfg.MaxBodySize),
		WithProxy(cfg.ProxyAddress),
		WithLogger(logger),
	)
}

// LanguagesURL returns the languages endpoint URL for a repository.
func (c *Client) LanguagesURL(repo config.Repository) string {
	return fmt.Sprintf("%s/repos/%s/%s/languages",
		c.baseURL, url.PathEscape(repo.Owner), url.PathEscape(repo.Name))
}

// Languages fetches the language tally for a repository.
// Any 2xx status is success. Other statuses return *FetchError.
func (c *Client) Languages(ctx context.Context, repo config.Repository) (model.Tally, error) {
	endpoint := c.LanguagesURL(repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", c.accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("fetching languages",
		"url", endpoint,
		"anonymous", c.token == "",
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch languages: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("languages response received",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			URL:        endpoint,
		}
	}

	tally, err := decodeTally(body)
	if err != nil {
		return nil, err
	}
	return tally, nil
}

package gog

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	// DefaultSearchURL is the GOG catalog search endpoint.
	DefaultSearchURL = "https://embed.gog.com/games/ajax/filtered"

	// DefaultProductURL is the GOG product API base; the product id is appended.
	DefaultProductURL = "https://api.gog.com/products"

	// DefaultTimeout is applied to every request individually.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "gogify/dev (https://github.com/steviee/gogify)"
)

// Client is a GOG catalog API client.
type Client struct {
	searchURL  string
	productURL string
	timeout    time.Duration
	userAgent  string
	httpClient *resty.Client
	limiter    ratelimit.Limiter
}

// Config holds client configuration.
type Config struct {
	SearchURL  string
	ProductURL string
	Timeout    time.Duration
	UserAgent  string

	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond int
}

// NewClient creates a new GOG API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.SearchURL == "" {
		config.SearchURL = DefaultSearchURL
	}

	if config.ProductURL == "" {
		config.ProductURL = DefaultProductURL
	}

	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	limiter := ratelimit.NewUnlimited()
	if config.RequestsPerSecond > 0 {
		limiter = ratelimit.New(config.RequestsPerSecond)
	}

	slog.Debug("creating GOG API client",
		"search_url", config.SearchURL,
		"product_url", config.ProductURL,
		"timeout", config.Timeout,
		"requests_per_second", config.RequestsPerSecond)

	httpClient := resty.New().
		SetTimeout(config.Timeout).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json")

	return &Client{
		searchURL:  config.SearchURL,
		productURL: config.ProductURL,
		timeout:    config.Timeout,
		userAgent:  config.UserAgent,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// get issues a GET request and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, op Op, url string, params map[string]string) (string, error) {
	c.limiter.Take()

	slog.Debug("GOG API request",
		"op", op,
		"url", url,
		"params", params)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", NewAPIError(op, 0, classifyTransportError(err))
	}

	slog.Debug("GOG API response",
		"op", op,
		"status", resp.StatusCode())

	if resp.StatusCode() != http.StatusOK {
		return "", NewAPIError(op, resp.StatusCode(), ErrUnexpectedStatus)
	}

	return resp.String(), nil
}

// classifyTransportError maps a transport failure to ErrTimeout or ErrConnectivity.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return ErrConnectivity
}

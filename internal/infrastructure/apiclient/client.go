// Package apiclient is the HTTP client of the district REST API. Every call
// carries the live bearer token, and a 401 answer ends the local session
// through the unauthorized hook before the error reaches the caller.
package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/ports"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://rotaractd4465api.up.railway.app/api/v1"
	// DefaultTimeout bounds one round trip.
	DefaultTimeout = 15 * time.Second

	defaultUserAgent = "rotaract-portal/1.0"
)

var (
	_ ports.AuthAPI         = (*Client)(nil)
	_ ports.ConvocatoriaAPI = (*Client)(nil)
	_ ports.ProyectoAPI     = (*Client)(nil)
	_ ports.ClubAPI         = (*Client)(nil)
)

// Client talks to the district API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	userAgent      string
	token          func() string
	onUnauthorized func(ctx context.Context)
	log            zerolog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithTokenSource sets the accessor consulted for the bearer token on every
// request. An empty result sends the request unauthenticated.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) {
		c.token = fn
	}
}

// WithUnauthorizedHandler sets the hook run synchronously whenever the API
// answers 401, before the error is returned.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client rooted at baseURL, or at DefaultBaseURL when empty.
//
//	client := apiclient.New("", apiclient.WithTokenSource(sessions.AccessToken))
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  defaultUserAgent,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("component", "apiclient").Logger()
	return c
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

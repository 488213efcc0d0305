// Package client talks to the RenderScreenshot HTTP API.
//
// A Client is safe for concurrent use. It never retries on its own; inspect
// errors with apierr.IsRetryable and back off as appropriate.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/Render-Screenshot/rs-go/apierr"
	"github.com/Render-Screenshot/rs-go/internal/xhttp"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
	"github.com/Render-Screenshot/rs-go/screenshot"
	"github.com/Render-Screenshot/rs-go/signedurl"
)

const DefaultTimeout = 60 * time.Second

var (
	ErrMissingAPIKey     = errors.New("client: api key is required")
	ErrMissingSigningKey = errors.New("client: signing key is required to generate signed urls")
)

type Client struct {
	Screenshot ScreenshotService
	Batch      BatchService
	Cache      CacheService
	Preset     PresetService

	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	signer     *signedurl.Signer

	mu        sync.Mutex
	rateLimit *RateLimitInfo
}

// New returns a Client authenticating with apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:    signedurl.DefaultBaseURL,
		apiVersion: signedurl.DefaultAPIVersion,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var base http.RoundTripper
	if cfg.httpClient != nil {
		base = cfg.httpClient.Transport
	}

	transport := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"}),
		Base: &rsTransport{
			base:    xhttp.NewTransport(base),
			limiter: cfg.limiter,
		},
	}

	httpClient := &http.Client{Transport: transport, Timeout: cfg.timeout}
	if cfg.httpClient != nil {
		httpClient.CheckRedirect = cfg.httpClient.CheckRedirect
		httpClient.Jar = cfg.httpClient.Jar
	}

	c := &Client{
		endpoint:   strings.TrimRight(cfg.baseURL, "/") + "/" + cfg.apiVersion,
		httpClient: httpClient,
		logger:     cfg.logger,
	}
	if cfg.signingKey != "" {
		c.signer = signedurl.New(cfg.signingKey,
			signedurl.WithBaseURL(cfg.baseURL),
			signedurl.WithAPIVersion(cfg.apiVersion),
		)
	}

	c.Screenshot = &screenshotService{client: c}
	c.Batch = &batchService{client: c}
	c.Cache = &cacheService{client: c}
	c.Preset = &presetService{client: c}

	return c, nil
}

type clientConfig struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	signingKey string
	limiter    *rate.Limiter
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithAPIVersion(version string) Option {
	return func(cfg *clientConfig) { cfg.apiVersion = version }
}

// WithHTTPClient supplies the transport, redirect policy and cookie jar. The
// client's own timeout still comes from WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

// WithSigningKey enables GenerateURL.
func WithSigningKey(key string) Option {
	return func(cfg *clientConfig) { cfg.signingKey = key }
}

// WithRateLimit paces outgoing requests to limit per second with the given
// burst. Requests wait for a token under their context.
func WithRateLimit(limit float64, burst int) Option {
	return func(cfg *clientConfig) {
		if limit <= 0 {
			cfg.limiter = nil
			return
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(limit), max(burst, 1))
	}
}

// GenerateURL returns a signed GET URL for o that stops working at
// expiresAt. It needs WithSigningKey.
func (c *Client) GenerateURL(o screenshot.Options, expiresAt time.Time) (string, error) {
	if c.signer == nil {
		return "", ErrMissingSigningKey
	}
	if err := o.Validate(); err != nil {
		return "", err
	}
	return c.signer.Sign(o, expiresAt), nil
}

// RateLimit returns the limits reported by the most recent response, or nil
// before any response carried them.
func (c *Client) RateLimit() *RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rateLimit == nil {
		return nil
	}
	info := *c.rateLimit
	return &info
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		b, err := go_json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set(xhttp.ContentType, xhttp.ApplicationJSON)
	}
	req.Header.Set(xhttp.XRequestID, uuid.NewString())
	return req, nil
}

// send executes req and turns error statuses into *apierr.Error. On success
// the caller owns the response body.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	attrs := []any{
		xslog.Method(req.Method),
		xslog.URL(req.URL.Path),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
		xslog.RequestID(req.Header.Get(xhttp.XRequestID)),
	}

	if info, err := ParseRateLimitHeaders(resp.Header); err == nil && info != nil {
		c.mu.Lock()
		c.rateLimit = info
		c.mu.Unlock()
		attrs = append(attrs, xslog.RateLimitRemaining(info.Remaining))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()
		apiErr := apierr.FromHTTPResponse(resp)
		c.logger.WarnContext(req.Context(), "api request failed", append(attrs, xslog.ErrorCode(string(apiErr.Code)))...)
		return nil, apiErr
	}

	c.logger.DebugContext(req.Context(), "api request", attrs...)
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	req.Header.Set(xhttp.Accept, xhttp.ApplicationJSON)

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if result != nil && resp.StatusCode != http.StatusNoContent {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(raw)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(raw))
		}
	}

	return nil
}

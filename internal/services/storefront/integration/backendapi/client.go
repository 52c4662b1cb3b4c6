// Package backendapi is the storefront's REST client for the backend API.
//
// Every response is normalized into one stable DTO schema here so pages never
// deal with backend field casing.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/platform/timeouts"
	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/metrics"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 4 << 20

// Config configures the backend client.
type Config struct {
	// BaseURL is the main backend API, e.g. http://localhost:8080.
	BaseURL string
	// CatalogBaseURL serves the public product listing. Empty reuses BaseURL.
	CatalogBaseURL string
	HTTPClient     *http.Client
	Timeout        time.Duration
	Logger         zerolog.Logger
}

// Client calls the backend REST API.
type Client struct {
	base    *url.URL
	catalog *url.URL
	http    *http.Client
	timeout time.Duration
	logger  zerolog.Logger
}

// New builds a client. Outbound requests are traced with otelhttp.
func New(cfg Config) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend base url: %w", err)
	}
	catalog := base
	if strings.TrimSpace(cfg.CatalogBaseURL) != "" {
		catalog, err = parseBaseURL(cfg.CatalogBaseURL)
		if err != nil {
			return nil, fmt.Errorf("catalog base url: %w", err)
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.BackendRequest
	}
	return &Client{
		base:    base,
		catalog: catalog,
		http:    tracedClient(cfg.HTTPClient),
		timeout: timeout,
		logger:  cfg.Logger,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	return u, nil
}

func tracedClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{}
	}
	traced := *client
	transport := traced.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	traced.Transport = otelhttp.NewTransport(transport)
	return &traced
}

// request describes one backend call.
type request struct {
	operation   string
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
	catalog     bool
}

// response is a completed backend call with a 2xx status.
type response struct {
	status int
	header http.Header
	body   []byte
}

func jsonBody(payload any) (io.Reader, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(raw), nil
}

// do executes req and maps non-2xx statuses to typed errors.
func (c *Client) do(ctx context.Context, req request) (response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	base := c.base
	if req.catalog {
		base = c.catalog
	}
	target := strings.TrimRight(base.String(), "/") + req.path

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return response{}, fmt.Errorf("%s: build request: %w", req.operation, err)
	}
	httpReq.Header.Set("Accept", "application/json, text/plain, */*")
	if req.body != nil {
		contentType := req.contentType
		if contentType == "" {
			contentType = "application/json"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := strings.TrimSpace(req.token); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := httpx.RequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(httpx.RequestIDHeader, requestID)
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.ObserveBackendCall(req.operation, "transport_error", time.Since(started))
		c.logger.Warn().Err(err).Str("operation", req.operation).Msg("backend call failed")
		return response{}, apperrors.Wrap(apperrors.KindUnavailable, "errors.backend_unavailable", fmt.Errorf("%s: %w", req.operation, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.ObserveBackendCall(req.operation, "transport_error", time.Since(started))
		c.logger.Warn().Err(err).Str("operation", req.operation).Int("status", resp.StatusCode).Msg("backend response read failed")
		return response{}, apperrors.Wrap(apperrors.KindUnavailable, "errors.backend_unavailable", fmt.Errorf("%s: read body: %w", req.operation, err))
	}
	metrics.ObserveBackendCall(req.operation, outcome(resp.StatusCode), time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Str("operation", req.operation).Int("status", resp.StatusCode).Msg("backend call rejected")
		return response{}, statusError(req.operation, resp.StatusCode, body)
	}
	return response{status: resp.StatusCode, header: resp.Header, body: body}, nil
}

func outcome(status int) string {
	switch {
	case status >= 200 && status <= 299:
		return "ok"
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "unauthorized"
	case status >= 400 && status <= 499:
		return "client_error"
	default:
		return "server_error"
	}
}

func pathID(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}

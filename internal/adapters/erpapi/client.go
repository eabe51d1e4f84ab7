// Package erpapi is the HTTP client of the ERP backend REST API.
package erpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/metrics"
	"golang.org/x/oauth2"
)

const defaultTimeout = 15 * time.Second

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client calls the ERP backend. Every request carries a bearer token: the caller's own
// token when the context has one, otherwise the configured token source.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  oauth2.TokenSource
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource sets the fallback source of bearer tokens.
func WithTokenSource(ts oauth2.TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = ts
	}
}

// NewClient creates a client for the API rooted at baseURL, e.g. "https://erp.example.com/api".
func NewClient(baseURL string, timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// credentialTokenSource adapts a CredentialProvider to an oauth2.TokenSource.
type credentialTokenSource struct {
	provider portssvc.CredentialProvider
}

// NewCredentialTokenSource exposes the stored credential as an oauth2.TokenSource.
func NewCredentialTokenSource(provider portssvc.CredentialProvider) oauth2.TokenSource {
	return credentialTokenSource{provider: provider}
}

func (s credentialTokenSource) Token() (*oauth2.Token, error) {
	raw, err := s.provider.GetToken()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}, nil
}

func (c *Client) token(ctx context.Context) (*oauth2.Token, error) {
	if raw, ok := middleware.BearerTokenFromCtx(ctx); ok {
		return &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}, nil
	}
	if c.tokens == nil {
		return nil, fmt.Errorf("%w: no token available for the ERP backend", apperrors.ErrUnauthenticated)
	}
	tok, err := c.tokens.Token()
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}
	return tok, nil
}

// call performs one request. endpoint is the route template used as metrics label.
func call[T any](ctx context.Context, c *Client, method, endpoint, path string, query url.Values, body any) (T, error) {
	var zero T
	tok, err := c.token(ctx)
	if err != nil {
		return zero, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode %s body: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return zero, fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	tok.SetAuthHeader(req)

	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendDuration.WithLabelValues(method, endpoint, "error").Observe(time.Since(start).Seconds())
		logger.Error("ERP request failed", slog.String("endpoint", endpoint), slog.String("error", err.Error()))
		return zero, fmt.Errorf("%w: %s %s: %v", apperrors.ErrBackend, method, endpoint, err)
	}
	defer resp.Body.Close()
	metrics.BackendDuration.WithLabelValues(method, endpoint, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := errorMessage(raw)
		logger.Warn("ERP request rejected",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg))
		if resp.StatusCode == http.StatusUnauthorized {
			return zero, fmt.Errorf("%w: %s", apperrors.ErrUnauthenticated, msg)
		}
		return zero, &apperrors.BackendError{StatusCode: resp.StatusCode, Message: msg}
	}

	var env dto.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("%w: %s returned an unreadable body: %v", apperrors.ErrBackend, endpoint, err)
	}
	if !env.Success {
		return zero, &apperrors.BackendError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return env.Data, nil
}

// errorMessage pulls the message out of an error body, which may or may not be an envelope.
func errorMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

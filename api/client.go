// Package api is a thin JSON REST client for the finance tracker backend.
// All endpoints live on a single origin and, apart from signup and the token
// endpoints, require a bearer access token.
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
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	errs "github.com/fintrack/go-finance-client/internal/errors"
)

const (
	contentTypeJSON = "application/json"

	// maxErrorExcerpt bounds how much of a non JSON error body is carried
	// into an error message so failures stay diagnosable without flooding logs.
	maxErrorExcerpt = 100
)

// Client talks to the finance tracker REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option modifies a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the given backend origin, e.g. "http://localhost:8000".
func New(baseURL string, timeout time.Duration, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, accessToken, path string, out any) error {
	return c.do(ctx, http.MethodGet, accessToken, path, nil, out)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, accessToken, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, accessToken, path, in, out)
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, accessToken, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, accessToken, path, in, out)
}

// Patch issues an authenticated PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, accessToken, path string, in, out any) error {
	return c.do(ctx, http.MethodPatch, accessToken, path, in, out)
}

// Delete issues an authenticated DELETE. The backend returns no body on success.
func (c *Client) Delete(ctx context.Context, accessToken, path string) error {
	return c.do(ctx, http.MethodDelete, accessToken, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, accessToken, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrapf(errs.ErrNetwork, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errs.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(resp)
		log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("request failed")
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(errs.ErrInvalidShape, "%s %s: %v", method, path, err)
	}
	return nil
}

// GetRaw issues an authenticated GET expecting a binary payload, returning the
// raw bytes together with the filename suggested by the server, if any.
func (c *Client) GetRaw(ctx context.Context, accessToken, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "[Client.GetRaw] build request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errs.Wrapf(errs.ErrNetwork, "GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, "", errs.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", newStatusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "[Client.GetRaw] read body")
	}
	return data, filenameFromDisposition(resp.Header.Get("Content-Disposition")), nil
}

func filenameFromDisposition(disposition string) string {
	for _, part := range strings.Split(disposition, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "filename=") {
			return strings.Trim(strings.TrimPrefix(part, "filename="), `"`)
		}
	}
	return ""
}

func excerpt(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorExcerpt {
		return fmt.Sprintf("%s...", text[:maxErrorExcerpt])
	}
	return text
}

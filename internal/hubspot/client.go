package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fatih/color"
	"golang.org/x/time/rate"

	"github.com/hjps/approvalctl/internal/config"
	clierrors "github.com/hjps/approvalctl/internal/errors"
)

// ErrNotFound is returned when a record lookup misses after every fallback
// path. Callers must treat it as "no data", not as a failure.
var ErrNotFound = errors.New("object not found")

// Portal rate limits for private-app tokens.
const (
	requestsPerSecond = 10
	burstLimit        = 100
)

// Client is a CRM record-store client scoped to the approval workflow's
// object types.
type Client struct {
	cfg     *config.Config
	client  *http.Client
	baseURL string
	debug   bool
	limiter *rate.Limiter
}

// NewClient creates a new record-store client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: cfg.BaseURL,
		debug:   cfg.Debug,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstLimit),
	}
}

var debugPrefix = color.New(color.FgWhite, color.Faint).Sprint("[hubspot]")

func (c *Client) debugf(format string, args ...interface{}) {
	if c.debug {
		fmt.Printf(debugPrefix+" "+format+"\n", args...)
	}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		body := readBodySnippet(resp)
		resp.Body.Close()
		return nil, clierrors.AuthError(fmt.Errorf("authentication failed (status %d): %s", resp.StatusCode, body))
	case resp.StatusCode >= 300:
		body := readBodySnippet(resp)
		resp.Body.Close()
		return nil, clierrors.APIError(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, body))
	}

	return resp, nil
}

func readBodySnippet(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil || len(data) == 0 {
		return "<no body>"
	}
	return string(data)
}

// getJSON performs a GET request and decodes the response into v
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// postJSON performs a POST request with a JSON payload and decodes the response into v
func (c *Client) postJSON(ctx context.Context, path string, payload, v interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, v)
}

// patchJSON performs a PATCH request with a JSON payload and decodes the response into v
func (c *Client) patchJSON(ctx context.Context, path string, payload, v interface{}) error {
	return c.sendJSON(ctx, http.MethodPatch, path, payload, v)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, v interface{}) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode request payload: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) objectPath(objectType string) string {
	return "/crm/v3/objects/" + objectType
}

// Package client talks to the advocate directory HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"advocates/internal/model"
)

// ErrUnexpectedStatus is returned, wrapped with the status code, for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Query selects one page of advocates. Zero Page or Limit leaves the server default.
type Query struct {
	Search string
	Page   int
	Limit  int
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// Client is an HTTP client for /api/advocates.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ListAdvocates fetches one page of advocates matching q.
func (c *Client) ListAdvocates(ctx context.Context, q Query) (*model.AdvocatePage, error) {
	u := c.baseURL + "/api/advocates"
	if enc := q.values().Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("list advocates: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var page model.AdvocatePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode advocates: %w", err)
	}
	if page.Data == nil {
		page.Data = []model.Advocate{}
	}
	return &page, nil
}

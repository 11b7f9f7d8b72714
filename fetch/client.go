// Package fetch retrieves the visitor count from the counter endpoint.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxBodyBytes bounds how much of a success body is read.
const maxBodyBytes = 1 << 20

const opFetch = "fetch.FetchRemoteCount"

// CounterResponse is the payload returned by the counter endpoint.
// Fields other than count are ignored.
type CounterResponse struct {
	Count int64 `json:"count"`
}

// Client issues count requests against one endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The client's own timeout, if any,
// is the only timeout applied to a request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient returns a client for endpoint, which must be an absolute http(s) URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q: missing host", endpoint)
	}

	c := &Client{
		endpoint:   u.String(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchRemoteCount performs a single GET against the endpoint. It does not retry.
func (c *Client) FetchRemoteCount(ctx context.Context) (CounterResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return CounterResponse{}, &Error{Op: opFetch, Kind: KindTransport, URL: c.endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CounterResponse{}, &Error{Op: opFetch, Kind: KindTransport, URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body is not reported.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return CounterResponse{}, &Error{Op: opFetch, Kind: KindResponse, URL: c.endpoint, Status: resp.StatusCode}
	}

	var payload struct {
		Count *int64 `json:"count"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return CounterResponse{}, &Error{Op: opFetch, Kind: KindDecode, URL: c.endpoint, Status: resp.StatusCode, Err: err}
	}
	switch {
	case payload.Count == nil:
		return CounterResponse{}, &Error{Op: opFetch, Kind: KindDecode, URL: c.endpoint, Status: resp.StatusCode, Err: errors.New("payload has no count")}
	case *payload.Count < 0:
		return CounterResponse{}, &Error{Op: opFetch, Kind: KindDecode, URL: c.endpoint, Status: resp.StatusCode, Err: fmt.Errorf("negative count %d", *payload.Count)}
	}
	return CounterResponse{Count: *payload.Count}, nil
}

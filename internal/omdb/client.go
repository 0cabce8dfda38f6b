// Package omdb provides a thin client for the external movie-metadata
// provider. Responses are relayed verbatim: the provider's JSON is never
// inspected or transformed.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// clientTimeout is the total request timeout.
	clientTimeout = 30 * time.Second
	// dialTimeout is the connection timeout.
	dialTimeout = 10 * time.Second
	// tlsHandshakeTimeout is the TLS negotiation timeout.
	tlsHandshakeTimeout = 10 * time.Second
	// responseHeaderTimeout is time to wait for response headers.
	responseHeaderTimeout = 15 * time.Second

	// maxResponseSize caps how much provider JSON is read (1 MB).
	maxResponseSize = 1 << 20
)

// ErrUpstreamFailure indicates the provider call failed (transport error
// or non-2xx status). Provider-side errors are not mapped to structured
// codes; a transient failure is a user-visible failure, no retries.
var ErrUpstreamFailure = errors.New("external fetch failed")

// Client queries the external movie-metadata provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a Client for the given provider base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: clientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

// SearchByKeyword forwards a keyword search (s) with optional media type,
// year and page, and relays the provider's JSON.
func (c *Client) SearchByKeyword(ctx context.Context, s, mediaType, year string, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("s", s)
	params.Set("page", strconv.Itoa(page))
	if mediaType != "" {
		params.Set("type", mediaType)
	}
	if year != "" {
		params.Set("y", year)
	}

	return c.get(ctx, params)
}

// SearchByTitle forwards a title search (t) with an optional year, and
// relays the provider's JSON.
func (c *Client) SearchByTitle(ctx context.Context, title, year string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("t", title)
	if year != "" {
		params.Set("y", year)
	}

	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params url.Values) (json.RawMessage, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	return json.RawMessage(body), nil
}

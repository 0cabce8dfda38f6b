// Package api is the REST client the shell uses to talk to the server.
package api

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

	"github.com/movieshelf/movieshelf/internal/model"
)

// Client calls the Movieshelf API. A bearer token, once set, is
// attached to every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a Client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// AuthResponse is the body of /register and /login.
type AuthResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// MessageResponse is a generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Register creates an account. The returned token is stored on the
// client, so the session is usable immediately.
func (c *Client) Register(ctx context.Context, name, login, password string) (*AuthResponse, error) {
	body := map[string]string{"login": login, "password": password}
	if name != "" {
		body["name"] = name
	}

	var result AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Login authenticates and stores the issued token on the client.
func (c *Client) Login(ctx context.Context, login, password string) (*AuthResponse, error) {
	var result AuthResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, map[string]string{
		"login":    login,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Logout tells the server goodbye and drops the stored token.
func (c *Client) Logout(ctx context.Context) (*MessageResponse, error) {
	var result MessageResponse
	if err := c.do(ctx, http.MethodPost, "/logout", nil, nil, &result); err != nil {
		return nil, err
	}
	c.token = ""
	return &result, nil
}

// ListMovies lists the user's movies; a non-empty query searches instead.
func (c *Client) ListMovies(ctx context.Context, query string) ([]model.Movie, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	var movies []model.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", params, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// MovieInput is the writable subset of a movie.
type MovieInput struct {
	Title     string  `json:"title,omitempty"`
	Year      *string `json:"year,omitempty"`
	Type      *string `json:"type,omitempty"`
	ImdbID    *string `json:"imdbID,omitempty"`
	PosterURL *string `json:"posterUrl,omitempty"`
}

// CreateMovie adds a movie to the collection.
func (c *Client) CreateMovie(ctx context.Context, input MovieInput) (*model.Movie, error) {
	var movie model.Movie
	if err := c.do(ctx, http.MethodPost, "/movies", nil, input, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetMovie fetches one movie by id.
func (c *Client) GetMovie(ctx context.Context, id int64) (*model.Movie, error) {
	var movie model.Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", id), nil, nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// UpdateMovie applies a partial update.
func (c *Client) UpdateMovie(ctx context.Context, id int64, input MovieInput) error {
	var ack MessageResponse
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/movies/%d", id), nil, input, &ack)
}

// DeleteMovie removes a movie.
func (c *Client) DeleteMovie(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", id), nil, nil, nil)
}

// ListCategories lists the shared category catalog.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchOmdb proxies a keyword search through the server.
// The OMDb response is returned as raw JSON.
func (c *Client) SearchOmdb(ctx context.Context, keyword, mediaType, year string, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("s", keyword)
	if mediaType != "" {
		params.Set("type", mediaType)
	}
	if year != "" {
		params.Set("y", year)
	}
	if page > 0 {
		params.Set("page", fmt.Sprint(page))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/movies/omdb", params, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SearchOmdbTitle proxies an exact-title lookup through the server.
func (c *Client) SearchOmdbTitle(ctx context.Context, title, year string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("t", title)
	if year != "" {
		params.Set("y", year)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/movies/omdb-title", params, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// do performs one request. in is JSON-encoded when non-nil; out is
// JSON-decoded from a 2xx body when non-nil. Error bodies are mapped
// to *APIError using the server's {"error": ...} shape.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func errorMessage(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return strings.TrimSpace(string(body))
}

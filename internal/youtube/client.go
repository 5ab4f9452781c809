package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://www.googleapis.com"
	publishedAfterForm = "2006-01-02T15:04:05Z"
)

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-success response from the Data API. One failed call
// contributes zero results for that keyword or channel batch; the caller
// decides whether the run continues.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithObserver registers a callback invoked after every API call with the
// endpoint name and response status (or "error" on transport failure).
func WithObserver(fn func(endpoint, status string)) ClientOption {
	return func(c *Client) {
		c.observe = fn
	}
}

// Client is a YouTube Data API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	observe    func(endpoint, status string)
}

// NewClient creates a YouTube API client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search returns up to maxResults video candidates for the keyword,
// restricted to videos published after the cutoff and ranked by the API's
// own view-count ordering.
func (c *Client) Search(ctx context.Context, keyword string, publishedAfter time.Time, maxResults int) ([]SearchItem, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", keyword)
	params.Set("type", "video")
	params.Set("order", "viewCount")
	params.Set("publishedAfter", publishedAfter.UTC().Format(publishedAfterForm))
	params.Set("maxResults", strconv.Itoa(maxResults))

	var resp struct {
		Items []SearchItem `json:"items"`
	}
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Videos returns detailed snippet, statistics and content details for the
// given video ids.
func (c *Client) Videos(ctx context.Context, ids []string) ([]VideoItem, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var resp struct {
		Items []VideoItem `json:"items"`
	}
	if err := c.get(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Channels returns snippet and statistics metadata for the given channel ids.
func (c *Client) Channels(ctx context.Context, ids []string) ([]ChannelItem, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(ids, ","))

	var resp struct {
		Items []ChannelItem `json:"items"`
	}
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/youtube/v3/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("youtube %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(endpoint, "error")
		return fmt.Errorf("youtube %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(endpoint, "error")
		return fmt.Errorf("youtube %s: read response: %w", endpoint, err)
	}

	c.record(endpoint, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("youtube %s: parse response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) record(endpoint, status string) {
	if c.observe != nil {
		c.observe(endpoint, status)
	}
}

func truncateBody(body []byte) string {
	const limit = 256
	s := string(body)
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

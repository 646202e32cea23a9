package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"riderdir/internal/domain"
)

const (
	collectionPath  = "/api/v1"
	requestIDHeader = "X-Request-ID"

	// maxErrorBody bounds how much of a failed response is kept for the log
	maxErrorBody = 512
)

// RiderClient is the remote collection the directory reads from and deletes in
type RiderClient interface {
	ListRiders(ctx context.Context, page, pageSize int, name string) ([]domain.Rider, error)
	SearchRiders(ctx context.Context, name string) ([]domain.Rider, error)
	DeleteRider(ctx context.Context, id string) error
}

// Client talks to the rider collection API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request. Zero disables the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListRiders fetches one page of riders. An empty name means no filter;
// the Name parameter is still sent.
func (c *Client) ListRiders(ctx context.Context, page, pageSize int, name string) ([]domain.Rider, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))
	params.Set("Name", name)
	return c.getRiders(ctx, "list", params)
}

// SearchRiders fetches riders matching name. The server does not paginate this path.
func (c *Client) SearchRiders(ctx context.Context, name string) ([]domain.Rider, error) {
	params := url.Values{}
	params.Set("Name", name)
	return c.getRiders(ctx, "search", params)
}

// DeleteRider deletes the rider with the given id. Only 200 counts as success.
func (c *Client) DeleteRider(ctx context.Context, id string) error {
	endpoint := c.baseURL + collectionPath + "/" + url.PathEscape(id)

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return &DeleteError{ID: id, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := c.do(req)
	if err != nil {
		return &DeleteError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &DeleteError{ID: id, StatusCode: resp.StatusCode, Err: statusError(resp)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) getRiders(ctx context.Context, op string, params url.Values) ([]domain.Rider, error) {
	endpoint := c.baseURL + collectionPath + "?" + params.Encode()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, &FetchError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: statusError(resp)}
	}

	var riders []domain.Rider
	if err := json.NewDecoder(resp.Body).Decode(&riders); err != nil {
		return nil, &FetchError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if riders == nil {
		riders = []domain.Rider{}
	}
	return riders, nil
}

// do sends the request tagged with a request id and logs the outcome
func (c *Client) do(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("api: %s %s [%s] failed after %s: %v", req.Method, req.URL, requestID, elapsed, err)
		return nil, err
	}
	log.Printf("api: %s %s [%s] -> %d in %s", req.Method, req.URL, requestID, resp.StatusCode, elapsed)
	return resp, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(body) == 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return fmt.Errorf("%w: %s, body: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body)))
}

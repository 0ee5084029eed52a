// Package httpstore reads memos from a remote memos-compatible REST API.
package httpstore

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

	"github.com/sony/gobreaker"

	"github.com/idilsaglam/pagedlist/internal/model"
)

const listPath = "/api/v1/memos"

// TokenFunc returns the bearer token to send, or "" for anonymous access.
type TokenFunc func() string

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
	breaker    *gobreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets where the bearer token comes from.
func WithToken(fn TokenFunc) Option {
	return func(c *Client) { c.token = fn }
}

// WithTimeout sets the per-request timeout of the default http client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token: func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "memos-api",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// A cancelled request says nothing about the server's health.
		IsSuccessful: func(err error) bool {
			return err == nil || err == context.Canceled
		},
	})
	return c
}

// apiMemo is the wire shape of one memo.
type apiMemo struct {
	Name       string    `json:"name"`
	State      string    `json:"state"`
	Creator    string    `json:"creator"`
	CreateTime time.Time `json:"createTime"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Pinned     bool      `json:"pinned"`
}

type listMemosResponse struct {
	Memos         []apiMemo `json:"memos"`
	NextPageToken string    `json:"nextPageToken"`
}

// ListPage implements store.Source. Failures are not retried; once the
// breaker is open requests fail fast until it half-opens.
func (c *Client) ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.listMemos(ctx, req)
	})
	if err != nil {
		return model.PageResponse{}, err
	}
	return out.(model.PageResponse), nil
}

// State exposes the breaker state for status lines.
func (c *Client) State() string {
	return c.breaker.State().String()
}

func (c *Client) listMemos(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(req.PageSize))
	if req.PageToken != "" {
		q.Set("pageToken", req.PageToken)
	}
	if req.Filter != "" {
		q.Set("filter", req.Filter)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath+"?"+q.Encode(), nil)
	if err != nil {
		return model.PageResponse{}, fmt.Errorf("memos: list memos: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return model.PageResponse{}, ctx.Err()
		}
		return model.PageResponse{}, fmt.Errorf("memos: list memos: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PageResponse{}, parseErrorResponse(resp)
	}

	var out listMemosResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.PageResponse{}, fmt.Errorf("memos: list memos: decode response: %w", err)
	}

	page := model.PageResponse{
		Items:         make([]model.Item, 0, len(out.Memos)),
		NextPageToken: out.NextPageToken,
	}
	for _, m := range out.Memos {
		page.Items = append(page.Items, model.Item{
			ID:         m.Name,
			Content:    m.Content,
			Tags:       m.Tags,
			Pinned:     m.Pinned,
			Archived:   m.State == "ARCHIVED",
			Creator:    strings.TrimPrefix(m.Creator, "users/"),
			CreateTime: m.CreateTime,
		})
	}
	return page, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("memos: list memos: status %d", e.StatusCode)
	}
	return fmt.Sprintf("memos: list memos: status %d: %s", e.StatusCode, e.Message)
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}

// Package client is a typed Go client for the lineup HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"festival-lineup/internal/model"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListEvents(ctx context.Context) ([]*model.Event, error) {
	events := []*model.Event{}
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := c.do(ctx, http.MethodGet, eventPath(id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	body := map[string]string{
		"name":        event.Name,
		"genre":       event.Genre,
		"image":       event.Image,
		"description": event.Description,
		"websiteUrl":  event.WebsiteURL,
	}
	var created model.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent sends only the fields set in params.
func (c *Client) UpdateEvent(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	var updated model.Event
	if err := c.do(ctx, http.MethodPut, eventPath(id), params.Fields(), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent returns the server's confirmation message.
func (c *Client) DeleteEvent(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, eventPath(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Register returns the server's confirmation message.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func eventPath(id string) string {
	return "/api/events/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var msg messageResponse
		if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
			apiErr.Detail = msg.Error
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

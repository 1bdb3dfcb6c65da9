// Package client is a thin HTTP client for the task-list API. It attaches
// the stored bearer token to every call and reacts to the expired-token tag
// by discarding the token and notifying the application, which mirrors how
// the web frontend forces a re-login.
package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// expiredTokenTag is the machine-readable tag the server reserves for
// expired tokens. Any response carrying it invalidates the stored token.
const expiredTokenTag = "auth/id-token-expired"

// Task is a task as returned by the API.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Tag     string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, strings.Join(e.Errors, "; "))
	}
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// TokenExpired reports whether the server rejected the call because the
// bearer token has expired and the caller must re-authenticate.
func (e *APIError) TokenExpired() bool {
	return e.Tag == expiredTokenTag
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the initial bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithOnExpired sets the callback invoked after the stored token is
// discarded because the server reported it expired. Applications typically
// use it to route the user back to login.
func WithOnExpired(fn func()) Option {
	return func(c *Client) {
		c.onExpired = fn
	}
}

// Client talks to the task-list API.
type Client struct {
	baseURL   string
	token     string
	onExpired func()
}

// New creates a new Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the stored bearer token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently stored bearer token.
func (c *Client) Token() string {
	return c.token
}

// ListTasks fetches all tasks owned by the authenticated user.
func (c *Client) ListTasks() ([]Task, error) {
	agent := fiber.Get(c.baseURL + "/api/tasks")
	var tasks []Task
	if err := c.do(agent, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task with the given title.
func (c *Client) CreateTask(title string) (*Task, error) {
	agent := fiber.Post(c.baseURL + "/api/tasks")
	agent.JSON(map[string]string{"title": title})
	var task Task
	if err := c.do(agent, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTitle renames the task with the given id.
func (c *Client) UpdateTitle(id, title string) error {
	agent := fiber.Put(c.baseURL + "/api/tasks/" + id)
	agent.JSON(map[string]string{"title": title})
	return c.do(agent, nil)
}

// SetCompleted marks the task with the given id as done or not done.
func (c *Client) SetCompleted(id string, completed bool) error {
	agent := fiber.Patch(c.baseURL + "/api/tasks/" + id)
	agent.JSON(map[string]bool{"completed": completed})
	return c.do(agent, nil)
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(id string) error {
	agent := fiber.Delete(c.baseURL + "/api/tasks/" + id)
	return c.do(agent, nil)
}

// do sends the request with the standard headers and decodes the response
// into out when it is non-nil.
func (c *Client) do(agent *fiber.Agent, out any) error {
	agent.Set("Accept", "application/json")
	if c.token != "" {
		agent.Set("Authorization", "Bearer "+c.token)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errs[0])
	}

	if status >= 400 {
		return c.apiError(status, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// apiError decodes an error response. An expired-token tag discards the
// stored credentials before the error is returned.
func (c *Client) apiError(status int, body []byte) error {
	var payload struct {
		Message string   `json:"message"`
		Error   string   `json:"error"`
		Errors  []string `json:"errors"`
	}
	// Body may not be JSON at all; the status code alone still makes an error.
	_ = json.Unmarshal(body, &payload)

	apiErr := &APIError{
		Status:  status,
		Message: payload.Message,
		Tag:     payload.Error,
		Errors:  payload.Errors,
	}

	if apiErr.TokenExpired() {
		c.token = ""
		if c.onExpired != nil {
			c.onExpired()
		}
	}

	return apiErr
}

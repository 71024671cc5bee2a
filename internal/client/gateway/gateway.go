// Package gateway is the client's HTTP access layer to the backend. It
// speaks the JSON API, attaches the bearer token to each request, and maps
// response statuses to the shared sentinel errors. Calls are not retried;
// a transport failure surfaces as errs.ErrNetwork.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// TokenSource supplies the current bearer token. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	Load() (string, error)
}

// Credentials is the body returned by register and login.
type Credentials struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client talks to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000". The token source is consulted on every request
// so a login taking effect mid-session needs no client rebuild.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// Register creates an account and returns the issued token with it.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Credentials, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Me returns the account matching the stored token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var payload struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// Save stores an arrangement. An empty id creates a new record; a non-empty
// id overwrites the existing one.
func (c *Client) Save(ctx context.Context, id string, in models.BentoBoxInput) (*models.BentoBox, error) {
	method, path := http.MethodPost, "/api/bentoboxes"
	if id != "" {
		method, path = http.MethodPut, "/api/bentoboxes/"+id
	}
	var box models.BentoBox
	if err := c.do(ctx, method, path, in, &box); err != nil {
		return nil, err
	}
	return &box, nil
}

// ListMine returns the caller's records, most recently updated first.
func (c *Client) ListMine(ctx context.Context) ([]models.BentoBox, error) {
	var boxes []models.BentoBox
	if err := c.do(ctx, http.MethodGet, "/api/bentoboxes/my", nil, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

// ListPublic returns the public gallery page.
func (c *Client) ListPublic(ctx context.Context) ([]models.BentoBox, error) {
	var boxes []models.BentoBox
	if err := c.do(ctx, http.MethodGet, "/api/bentoboxes/public", nil, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

// GetBox fetches a single record by id.
func (c *Client) GetBox(ctx context.Context, id string) (*models.BentoBox, error) {
	var box models.BentoBox
	if err := c.do(ctx, http.MethodGet, "/api/bentoboxes/"+id, nil, &box); err != nil {
		return nil, err
	}
	return &box, nil
}

// DeleteBox removes a record owned by the caller.
func (c *Client) DeleteBox(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/bentoboxes/"+id, nil, nil)
}

// do performs one JSON request/response round trip. A non-nil body is
// marshalled and sent; a non-nil out receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Load()
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrNetwork, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return statusError(res)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// statusError converts an error response into the matching sentinel, keeping
// the server's message as context.
func statusError(res *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&payload)
	msg := payload.Error
	if msg == "" {
		msg = res.Status
	}

	var sentinel error
	switch res.StatusCode {
	case http.StatusBadRequest:
		sentinel = errs.ErrValidation
	case http.StatusUnauthorized:
		sentinel = errs.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = errs.ErrForbidden
	case http.StatusNotFound:
		sentinel = errs.ErrNotFound
	case http.StatusConflict:
		sentinel = errs.ErrAlreadyExists
	default:
		return fmt.Errorf("server error (%d): %s", res.StatusCode, msg)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/skaran/portfolio/internal/models"
)

// Cache keys for GET responses.
const (
	ContentKey  = "portfolio-content"
	ContactsKey = "contacts"
)

// Client is a typed wrapper over the portfolio API. GET responses are cached
// by key until invalidated; the session cookie from a successful login is
// carried automatically.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
		cache: make(map[string][]byte),
	}, nil
}

// Invalidate drops one cached response so the next read refetches.
func (c *Client) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, key)
}

// Content fetches the portfolio content document, served from cache when
// available.
func (c *Client) Content(ctx context.Context) (*models.ContentPayload, error) {
	body, err := c.getCached(ctx, ContentKey, "/api/portfolio-content")
	if err != nil {
		return nil, err
	}

	var payload models.ContentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Contacts fetches all contact messages, newest first. Requires an admin
// session.
func (c *Client) Contacts(ctx context.Context) ([]models.Contact, error) {
	body, err := c.getCached(ctx, ContactsKey, "/api/contacts")
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err := json.Unmarshal(body, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SubmitContact posts a contact-form entry.
func (c *Client) SubmitContact(ctx context.Context, name, email, message string) (*models.Contact, error) {
	var resp models.ContactCreatedResponse
	if err := c.postJSON(ctx, "/api/contact", models.ContactRequest{
		Name:    name,
		Email:   email,
		Message: message,
	}, &resp); err != nil {
		return nil, err
	}
	c.Invalidate(ContactsKey)
	return resp.Contact, nil
}

// Login authenticates the admin session.
func (c *Client) Login(ctx context.Context, password string) error {
	var resp models.APIResponse
	return c.postJSON(ctx, "/api/admin/login", models.LoginRequest{Password: password}, &resp)
}

// Logout clears the admin session.
func (c *Client) Logout(ctx context.Context) error {
	var resp models.APIResponse
	return c.postJSON(ctx, "/api/admin/logout", nil, &resp)
}

// Status reports whether the current session is an admin session.
func (c *Client) Status(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/status", nil)
	if err != nil {
		return false, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	var status models.AdminStatusResponse
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return false, err
	}
	return status.IsAdmin, nil
}

// SaveContent submits the full content document and invalidates the cached
// copy so the next read reflects the save.
func (c *Client) SaveContent(ctx context.Context, payload *models.ContentPayload) (*models.ContentPayload, error) {
	var resp models.ContentUpdatedResponse
	if err := c.postJSON(ctx, "/api/admin/portfolio-content", payload, &resp); err != nil {
		return nil, err
	}
	c.Invalidate(ContentKey)
	return resp.Content, nil
}

func (c *Client) getCached(ctx context.Context, key, path string) ([]byte, error) {
	c.mu.Lock()
	if body, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return body, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, c.apiError(res)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return nil, err
	}
	body := buf.Bytes()

	c.mu.Lock()
	c.cache[key] = body
	c.mu.Unlock()
	return body, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return c.apiError(res)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// apiError surfaces the server's message when the body carries one.
func (c *Client) apiError(res *http.Response) error {
	var apiErr models.APIResponse
	if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return &APIError{Status: res.StatusCode, Message: apiErr.Message, Fields: apiErr.Errors}
	}
	return &APIError{Status: res.StatusCode, Message: http.StatusText(res.StatusCode)}
}

// APIError is a non-2xx API response.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

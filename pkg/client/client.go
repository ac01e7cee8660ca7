// Package client is a typed Go client for the portfolio API. It keeps
// the issued token and user profile in a CredentialStore, attaches the
// token as a bearer credential on every request, and drops stored
// credentials whenever the server answers 401. It performs no retries
// and no request queuing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User mirrors the API's user payload.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project mirrors the API's project payload.
type Project struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"imageUrl"`
	DemoURL      string    `json:"demoUrl,omitempty"`
	RepoURL      string    `json:"repoUrl,omitempty"`
	Featured     bool      `json:"featured"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ContactMessage mirrors the API's contact message payload.
type ContactMessage struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse is returned by Login and Register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIError is the decoded error body of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Detail     string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client calls the portfolio API.
type Client struct {
	baseURL string
	http    *http.Client
	store   CredentialStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCredentialStore overrides the default in-memory credential store.
func WithCredentialStore(s CredentialStore) Option {
	return func(c *Client) { c.store = s }
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs a request with the stored bearer token attached, decodes
// the response into out (when non-nil), and clears stored credentials
// on any 401.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Stored credentials are stale; drop them so the caller can
		// re-prompt for authentication.
		_ = c.store.Clear()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Login authenticates and persists the issued token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var auth AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &auth)
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(auth.Token, &auth.User); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates an account and persists the issued token and profile.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var auth AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &auth)
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(auth.Token, &auth.User); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Logout discards stored credentials. Purely client-side; tokens cannot
// be revoked server-side and simply expire.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// CurrentUser returns the locally stored profile, or nil when logged out.
func (c *Client) CurrentUser() *User {
	return c.store.User()
}

// IsAuthenticated reports whether a token is stored. It does not verify
// expiry; an expired token surfaces as a 401 on the next call.
func (c *Client) IsAuthenticated() bool {
	return c.store.Token() != ""
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes name and/or email and refreshes the stored profile.
func (c *Client) UpdateProfile(ctx context.Context, name, email string) (*User, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if email != "" {
		body["email"] = email
	}

	var user User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", body, &user); err != nil {
		return nil, err
	}
	if token := c.store.Token(); token != "" {
		_ = c.store.Save(token, &user)
	}
	return &user, nil
}

// ListProjects fetches all projects, newest first.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id uint) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project. Requires authentication.
func (c *Client) CreateProject(ctx context.Context, p Project) (*Project, error) {
	var created Project
	if err := c.do(ctx, http.MethodPost, "/projects", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject applies a partial update. Requires authentication.
func (c *Client) UpdateProject(ctx context.Context, id uint, fields map[string]any) (*Project, error) {
	var updated Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject deletes a project. Requires authentication.
func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

// SubmitContact sends a contact form message. Public.
func (c *Client) SubmitContact(ctx context.Context, name, email, message string) (*ContactMessage, error) {
	var resp struct {
		Message string         `json:"message"`
		Contact ContactMessage `json:"contact"`
	}
	err := c.do(ctx, http.MethodPost, "/contact", map[string]string{
		"name":    name,
		"email":   email,
		"message": message,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Contact, nil
}

// ListContactMessages fetches submitted messages. Requires authentication.
func (c *Client) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := c.do(ctx, http.MethodGet, "/contact", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteContactMessage deletes a message. Requires authentication.
func (c *Client) DeleteContactMessage(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/contact/%d", id), nil, nil)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aliaa11/userboard/internal/logging"
	"github.com/aliaa11/userboard/internal/models"
)

// TokenSource yields the stored bearer token. An absent token is ("", nil);
// calls are then issued without an Authorization header and the backend
// answers 401.
type TokenSource interface {
	Read(ctx context.Context) (string, error)
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks JSON over HTTP to the backend at a fixed base URL.
type HTTPClient struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    logging.Logger
}

// NewHTTPClient builds a client for the given base URL. The underlying
// http.Client carries no timeout; cancellation comes from the ctx passed to
// each call.
func NewHTTPClient(base string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{},
		tokens: tokens,
		log:    log,
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/register", req, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, errorFromResponse(resp, "Registration failed")
	}
	return decodeUser(resp.Body)
}

// Login exchanges credentials for a bearer token. Persisting the token is the
// session manager's job, not the client's.
func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", creds, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return "", errorFromResponse(resp, "Login failed")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}
	return body.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/logout", nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return errorFromResponse(resp, "Logout failed")
	}
	return nil
}

// ListUsers fetches one page of the user list. Both envelope shapes the
// backend emits are decoded explicitly and the pagination window is validated
// before the page is handed to the caller.
func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}

	resp, err := c.do(ctx, http.MethodGet, "/users?page="+strconv.Itoa(page), nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, errorFromResponse(resp, "Failed to fetch users")
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}

	var up models.UserPage
	if env.Users != nil {
		up.Users = env.Users.Data
		up.Pagination = env.Users.Pagination
	} else {
		up.Users = env.Data
		up.Pagination = env.Pagination
	}
	if up.Users == nil {
		up.Users = []models.User{}
	}

	up.Normalize()
	if err := up.Validate(); err != nil {
		return nil, fmt.Errorf("user list response rejected: %w", err)
	}
	return &up, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, errorFromResponse(resp, "Failed to fetch user")
	}
	return decodeUser(resp.Body)
}

func (c *HTTPClient) CreateUser(ctx context.Context, data UserData) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users", data, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, errorFromResponse(resp, "Failed to create user")
	}
	return decodeUser(resp.Body)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, data UserData) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), data, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, errorFromResponse(resp, "Failed to update user")
	}
	return decodeUser(resp.Body)
}

// DeleteUser removes an account. Any 2xx means success; the body is ignored.
func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp) {
		return errorFromResponse(resp, "Failed to delete user")
	}
	return nil
}

// CurrentUser resolves the account the stored token belongs to. Every kind
// of failure (no token, transport error, non-2xx, undecodable body) is
// swallowed and reported as (nil, nil), so callers treat "no user" uniformly
// instead of handling errors. Without a stored token no request is made.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	token, err := c.tokens.Read(ctx)
	if err != nil || token == "" {
		return nil, nil
	}

	resp, err := c.do(ctx, http.MethodGet, "/user", nil, true)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, nil
	}

	user, err := decodeUser(resp.Body)
	if err != nil {
		return nil, nil
	}
	return user, nil
}

// CurrentUserID projects CurrentUser down to the account id.
func (c *HTTPClient) CurrentUserID(ctx context.Context) (int64, error) {
	user, err := c.CurrentUser(ctx)
	if err != nil || user == nil {
		return 0, ErrNotLoggedIn
	}
	return user.ID, nil
}

// do builds and issues one request. Bodies are JSON; authenticated calls
// carry the stored bearer token; every request is tagged with an X-Request-Id
// for correlation with backend logs.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, withAuth bool) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		token, err := c.tokens.Read(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func success(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// listEnvelope covers both list shapes the backend emits: the nested
// {"users": {"data": [...], "current_page": ...}} form and the flat
// {"data": [...], "current_page": ...} form.
type listEnvelope struct {
	Users *struct {
		Data []models.User `json:"data"`
		models.Pagination
	} `json:"users"`

	Data []models.User `json:"data"`
	models.Pagination
}

// decodeUser reads a user object that may arrive bare or wrapped in a
// {"user": ...} envelope.
func decodeUser(r io.Reader) (*models.User, error) {
	raw, err := io.ReadAll(io.LimitReader(r, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read user response: %w", err)
	}

	var wrapper struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.User != nil {
		return wrapper.User, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}
	return &user, nil
}

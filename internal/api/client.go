// Package api is the REST client for the user-management backend. Every
// operation maps to one backend capability; responses are decoded against
// explicit envelope types and failures are normalized into *Error values
// carrying the backend's message when one is available.
package api

import (
	"context"

	"github.com/aliaa11/userboard/internal/models"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account-creation request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserData carries the writable user fields for create and update calls.
// Password is omitted when blank so an update keeps the existing one.
type UserData struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password,omitempty"`
	Role     models.Role `json:"role"`
}

// Client is the backend capability surface. All calls are single-attempt:
// no retries, no client-side timeout (callers keep cancellation authority
// through ctx).
//
// CurrentUser is the one operation that never fails: any transport or HTTP
// error resolves to (nil, nil) so every consumer treats "no user" uniformly.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, creds Credentials) (string, error)
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, data UserData) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, data UserData) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CurrentUser(ctx context.Context) (*models.User, error)
	CurrentUserID(ctx context.Context) (int64, error)
}

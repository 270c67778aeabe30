// Package models defines the domain types the dashboard works with: user
// records as the backend returns them, roles, and pagination envelopes.
// The backend owns all of this data; the client only holds transient copies.
package models

// Role is a user's global role as reported by the backend.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid reports whether the role is one of the known backend roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrative actions in the UI.
// This is advisory gating only; the backend enforces the real rules.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is a single account record.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

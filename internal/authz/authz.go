// Package authz implements the client-side permission checks the dashboard
// performs before issuing a request: a user may edit or delete their own
// account, admins may edit or delete anyone.
//
// These checks are advisory. They exist so the UI can refuse obviously
// forbidden actions without a round trip; the backend independently enforces
// the same rules and remains the authority.
package authz

import (
	"errors"

	"github.com/aliaa11/userboard/internal/models"
)

// Sentinel denials. The texts are shown to the user verbatim.
var (
	ErrEditForbidden   = errors.New("You can only edit your own profile")
	ErrDeleteForbidden = errors.New("You can only delete your own account")
)

// CanEditUser reports whether viewer may edit the account with the given id.
// A nil viewer (anonymous session) is always denied.
func CanEditUser(viewer *models.User, id int64) error {
	if viewer == nil {
		return ErrEditForbidden
	}
	if viewer.Role.IsAdmin() || viewer.ID == id {
		return nil
	}
	return ErrEditForbidden
}

// CanDeleteUser reports whether viewer may delete the account with the given id.
func CanDeleteUser(viewer *models.User, id int64) error {
	if viewer == nil {
		return ErrDeleteForbidden
	}
	if viewer.Role.IsAdmin() || viewer.ID == id {
		return nil
	}
	return ErrDeleteForbidden
}

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliaa11/userboard/internal/models"
)

var (
	admin  = &models.User{ID: 1, Role: models.RoleAdmin}
	member = &models.User{ID: 2, Role: models.RoleMember}
)

func TestCanEditUser(t *testing.T) {
	assert.NoError(t, CanEditUser(admin, 99))
	assert.NoError(t, CanEditUser(member, 2))

	err := CanEditUser(member, 99)
	assert.ErrorIs(t, err, ErrEditForbidden)
	assert.Equal(t, "You can only edit your own profile", err.Error())

	assert.ErrorIs(t, CanEditUser(nil, 2), ErrEditForbidden)
}

func TestCanDeleteUser(t *testing.T) {
	assert.NoError(t, CanDeleteUser(admin, 99))
	assert.NoError(t, CanDeleteUser(member, 2))

	err := CanDeleteUser(member, 99)
	assert.ErrorIs(t, err, ErrDeleteForbidden)
	assert.Equal(t, "You can only delete your own account", err.Error())

	assert.ErrorIs(t, CanDeleteUser(nil, 2), ErrDeleteForbidden)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("owner").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleMember.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{}
	p.Normalize()
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.LastPage)
	assert.Equal(t, 10, p.PerPage)

	p = Pagination{CurrentPage: 3, LastPage: 5, Total: 42, PerPage: 10}
	p.Normalize()
	assert.Equal(t, Pagination{CurrentPage: 3, LastPage: 5, Total: 42, PerPage: 10}, p)
}

func TestPaginationValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Pagination
		wantErr bool
	}{
		{"single page", Pagination{CurrentPage: 1, LastPage: 1}, false},
		{"middle page", Pagination{CurrentPage: 2, LastPage: 4}, false},
		{"zero page", Pagination{CurrentPage: 0, LastPage: 1}, true},
		{"beyond last", Pagination{CurrentPage: 5, LastPage: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package cli

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/aliaa11/userboard/internal/api"
	"github.com/aliaa11/userboard/internal/models"
)

// userForm collects the writable user fields from interactive prompts before
// they are sent to the backend. Validation mirrors what the backend enforces
// so obvious mistakes are caught before a round trip.
type userForm struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Validate checks the form. Password is only mandatory on create; an edit
// with a blank password keeps the existing one.
func (f userForm) Validate(passwordRequired bool) error {
	passwordRules := []validation.Rule{}
	if passwordRequired {
		passwordRules = append(passwordRules, validation.Required)
	}
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, passwordRules...),
		validation.Field(&f.Role, validation.Required,
			validation.In(string(models.RoleAdmin), string(models.RoleMember))),
	)
}

func (f userForm) toUserData() api.UserData {
	return api.UserData{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		Role:     models.Role(f.Role),
	}
}

// registerForm is the self-service signup form. Role is fixed server-side,
// so only identity fields are collected.
type registerForm struct {
	Name     string
	Email    string
	Password string
}

func (f registerForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

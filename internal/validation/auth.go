package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/cx-tal-miterani/skybook/internal/models"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

const (
	MsgNameTooShort     = "Name must be at least 2 characters long"
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgPasswordTooShort = "Password must be at least 6 characters long"
	MsgPasswordMismatch = "Passwords do not match"
)

// AuthValidator validates login and registration forms
type AuthValidator struct{}

// NewAuthValidator creates a new AuthValidator
func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// Validate checks form. Name and confirmation are only checked when
// isRegistration is set.
func (v *AuthValidator) Validate(form models.AuthForm, isRegistration bool) models.ValidationResult {
	errs := models.ValidationResult{}

	if isRegistration && utf8.RuneCountInString(strings.TrimSpace(form.Name)) < MinNameLength {
		errs.Set(models.FieldName, MsgNameTooShort)
	}

	if !IsValidEmail(form.Email) {
		errs.Set(models.FieldEmail, MsgInvalidEmail)
	}

	if utf8.RuneCountInString(form.Password) < MinPasswordLength {
		errs.Set(models.FieldPassword, MsgPasswordTooShort)
	}

	if isRegistration && form.Password != form.Confirm {
		errs.Set(models.FieldConfirm, MsgPasswordMismatch)
	}

	return errs
}

package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

var validate = validator.New(validator.WithRequiredStructEnabled())

type credentials struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required"`
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials checks that email is well formed and password is long enough.
func ValidateCredentials(email, password string) bool {
	if err := validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return false
	}
	return len([]rune(password)) >= minPasswordLength
}

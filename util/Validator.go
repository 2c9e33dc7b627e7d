package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// usernameRe: 3-30 chars, lowercase letters, digits, dot or underscore,
// must start with a letter.
var usernameRe = regexp.MustCompile(`^[a-z][a-z0-9._]{2,29}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// "username" tag backs the username-format rule on DTOs
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateStruct checks for tag-based validation errors
func ValidateStruct(payload interface{}) error {
	return validate.Struct(payload)
}

// IsValidUsername exposes the username rule for callers outside DTO binding
func IsValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

package cli

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrWeakPassword is returned when a password lacks a letter or a digit.
var ErrWeakPassword = errors.New("password must contain at least one letter and one digit")

// RegisterRequest holds the credentials for a new account.
type RegisterRequest struct {
	Username string `validate:"required,alpha,max=30"`
	Password string `validate:"required,min=3"`
}

// ValidateRegister checks the username and password rules.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return describe(verrs[0])
		}
		return err
	}

	if !isPasswordComplex(req.Password) {
		return ErrWeakPassword
	}
	return nil
}

func describe(fe validator.FieldError) error {
	switch fe.Field() + "." + fe.Tag() {
	case "Username.required", "Password.required":
		return fmt.Errorf("%s is required", fe.Field())
	case "Username.alpha":
		return errors.New("username may only contain letters")
	case "Username.max":
		return errors.New("username must be at most 30 characters")
	case "Password.min":
		return errors.New("password must be at least 3 characters")
	}
	return fmt.Errorf("invalid %s", fe.Field())
}

func isPasswordComplex(s string) bool {
	var hasLetter, hasDigit bool
	for _, char := range s {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

package forms

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// LoginForm carries the POST /login fields.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email_shape"`
	Password string `form:"password" validate:"required"`
}

// SignupForm carries the POST /signup fields. ConfirmPassword never leaves
// the process.
type SignupForm struct {
	FullName        string `form:"full_name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email_shape"`
	Password        string `form:"password" validate:"required,password_strength"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	Birthday        string `form:"birthday" validate:"required"`
	Gender          string `form:"gender" validate:"required,oneof=male female other"`
	Role            string `form:"role" validate:"required,oneof=student tutor"`
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordOK reports whether a password has at least one letter, one digit
// and one symbol, and is 6 to 25 characters long.
func PasswordOK(password string) bool {
	runes := []rune(password)
	if len(runes) < 6 || len(runes) > 25 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

// NewValidator builds the validator instance with the custom auth rules
// registered. Call once at startup and share.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration cannot fail for funcs with non-empty tags.
	_ = validate.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		return PasswordOK(fl.Field().String())
	})

	return validate
}

// fieldMessages maps field names to user-facing validation text. Tags that
// need distinct wording per rule are resolved in Message.
var fieldMessages = map[string]string{
	"Email":           "Enter a valid email address",
	"Password":        "Password must be 6 to 25 characters with at least one letter, one digit and one symbol",
	"ConfirmPassword": "Passwords do not match",
	"FullName":        "Enter your full name",
	"Birthday":        "Enter your birthday",
	"Gender":          "Select a gender",
	"Role":            "Select whether you are a student or a tutor",
}

// Message turns a validation error into one user-facing sentence, reporting
// the first failing field.
func Message(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Please check the form and try again"
	}

	first := validationErrors[0]
	if first.Field() == "Password" && first.Tag() == "required" {
		return "Enter your password"
	}
	if msg, ok := fieldMessages[first.Field()]; ok {
		return msg
	}
	return "Please check the form and try again"
}

// Trim normalises the whitespace of every free-text field before validation.
func (f *SignupForm) Trim() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Birthday = strings.TrimSpace(f.Birthday)
	f.Gender = strings.TrimSpace(f.Gender)
	f.Role = strings.TrimSpace(f.Role)
}

// Trim normalises the email field before validation.
func (f *LoginForm) Trim() {
	f.Email = strings.TrimSpace(f.Email)
}

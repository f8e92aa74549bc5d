package auth

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

const (
	maxUsernameLen    = 150
	maxNameLen        = 150
	minPasswordLen    = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// SignupInput holds the sign-up form.
type SignupInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password1 string
	Password2 string
}

// Normalize trims whitespace and lower-cases the email.
func (i *SignupInput) Normalize() {
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// FullName joins first and last name.
func (i SignupInput) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// Validate validates the sign-up input.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case utf8.RuneCountInString(i.Username) > maxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	case !validUsername(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "letters, digits and @/./+/-/_ only"})
	case reservedUsername(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "this username is reserved"})
	}

	if utf8.RuneCountInString(i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if utf8.RuneCountInString(i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if addr, err := mail.ParseAddress(i.Email); err != nil || addr.Address != i.Email {
		errs = append(errs, domain.FieldError{Field: "email", Message: "enter a valid email address"})
	}

	switch {
	case len(i.Password1) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password1", Message: "must be at least 8 characters"})
	case len(i.Password1) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password1", Message: "too long"})
	}
	if i.Password1 != i.Password2 {
		errs = append(errs, domain.FieldError{Field: "password2", Message: "the two password fields didn't match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the login form.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validUsername(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if !strings.ContainsRune("@.+-_", r) {
			return false
		}
	}
	return true
}

// reservedUsername reports names that would collide with top-level routes,
// since profiles live at /<username>/. All-dot names are path segments the
// router cleans away.
func reservedUsername(s string) bool {
	if strings.Trim(s, ".") == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "new", "follow", "group", "auth", "about", "live", "ready", "health", "media", "static":
		return true
	}
	return false
}

// Package validation holds the checks run on form input before any request
// is sent.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error is a client-side validation failure. Its message is shown to the
// user as is.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(msg string) error { return &Error{Message: msg} }

const (
	MsgLoginBlank       = "Email and password cannot be empty"
	MsgFieldsBlank      = "All fields must be filled"
	MsgInvalidEmail     = "Invalid email format"
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordPolicy   = "Password does not meet requirements"
	MsgNoVerification   = "Verification token not found"
	MsgCurrentBlank     = "Current password cannot be empty"
	MsgFullNameBlank    = "Full name cannot be empty"
	MsgBirthDateBlank   = "Birth date cannot be empty"
	MsgInvalidBirthDate = "Birth date must be DD/MM/YYYY"
	MsgInvalidIdentity  = "Identity type must be tuli or dengar"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func Login(email, password string) error {
	if blank(email) || blank(password) {
		return fail(MsgLoginBlank)
	}
	return nil
}

type Registration struct {
	Email           string
	FullName        string
	BirthDate       string
	IdentityType    string
	Password        string
	PasswordConfirm string
}

// Register checks, in order: blank fields, email format, confirmation, then
// the password policy.
func Register(r Registration) error {
	for _, f := range []string{r.Email, r.FullName, r.BirthDate, r.IdentityType, r.Password, r.PasswordConfirm} {
		if blank(f) {
			return fail(MsgFieldsBlank)
		}
	}
	if !Email(r.Email) {
		return fail(MsgInvalidEmail)
	}
	if r.Password != r.PasswordConfirm {
		return fail(MsgPasswordMismatch)
	}
	if !RegistrationPassword(r.Password) {
		return fail(MsgPasswordPolicy)
	}
	return nil
}

// ChangePassword validates a new password pair and the presence of the
// verification token obtained from the current password check.
func ChangePassword(newPassword, confirm, verificationToken string) error {
	if newPassword != confirm {
		return fail(MsgPasswordMismatch)
	}
	if !ChangePasswordPolicy(newPassword) {
		return fail(MsgPasswordPolicy)
	}
	if verificationToken == "" {
		return fail(MsgNoVerification)
	}
	return nil
}

func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// RegistrationPassword accepts any non letter or digit as the special
// character.
func RegistrationPassword(p string) bool {
	return policy(p, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
}

// ChangePasswordPolicy only accepts one of !@#$ as the special character.
func ChangePasswordPolicy(p string) bool {
	return policy(p, func(r rune) bool { return strings.ContainsRune("!@#$", r) })
}

func policy(p string, special func(rune) bool) bool {
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return false
	}
	var lower, upper, digit, spec bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
		if special(r) {
			spec = true
		}
	}
	return lower && upper && digit && spec
}

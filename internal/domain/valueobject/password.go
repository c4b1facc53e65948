package valueobject

import (
	"unicode"
	"unicode/utf8"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
)

const (
	plainPasswordMinLength  = 8
	plainPasswordMaxLength  = 128
	hashedPasswordMinLength = 20
)

// PlainPassword holds raw password text during registration and
// password-change flows. It is never persisted and never printed.
type PlainPassword struct {
	value string
}

// NewPlainPassword validates password strength: 8-128 characters with at
// least one uppercase letter, one lowercase letter and one digit. No
// normalization is applied.
func NewPlainPassword(raw string) (PlainPassword, error) {
	if raw == "" {
		return PlainPassword{}, domainerr.NewValidation("password", "password cannot be empty")
	}
	n := utf8.RuneCountInString(raw)
	if n < plainPasswordMinLength {
		return PlainPassword{}, domainerr.NewValidation("password", "password must be at least 8 characters")
	}
	if n > plainPasswordMaxLength {
		return PlainPassword{}, domainerr.NewValidation("password", "password must be at most 128 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return PlainPassword{}, domainerr.NewValidation("password",
			"password must contain at least one uppercase letter, one lowercase letter, and one digit")
	}
	return PlainPassword{value: raw}, nil
}

// Value returns the raw text for hashing. Callers must not log it.
func (p PlainPassword) Value() string { return p.value }

// String hides the password from accidental formatting.
func (p PlainPassword) String() string { return "***HIDDEN***" }

// HashedPassword holds the output of the hashing port. The length floor is a
// structural sanity check only; the hasher guarantees the real format.
type HashedPassword struct {
	value string
}

// NewHashedPassword wraps a hash produced by the hashing port.
func NewHashedPassword(raw string) (HashedPassword, error) {
	if raw == "" {
		return HashedPassword{}, domainerr.NewValidation("hashed_password", "hashed password cannot be empty")
	}
	if len(raw) < hashedPasswordMinLength {
		return HashedPassword{}, domainerr.NewValidation("hashed_password", "invalid hashed password format")
	}
	return HashedPassword{value: raw}, nil
}

// Value returns the stored hash for persistence and verification.
func (p HashedPassword) Value() string { return p.value }

// String hides the hash from accidental formatting.
func (p HashedPassword) String() string { return "***HASHED***" }

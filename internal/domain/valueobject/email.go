package valueobject

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
)

const emailMaxLength = 255

// Permissive local@domain.tld shape: ASCII letters/digits/._%+- in the local
// part, dot-separated domain labels, TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable, normalized email address. The zero value is invalid;
// construct through NewEmail.
type Email struct {
	value string
}

// NewEmail normalizes (lowercase, trim) and validates a raw email string.
// All equality, persistence and lookup operations use the normalized form.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, domainerr.NewValidation("email", "email cannot be empty")
	}
	if utf8.RuneCountInString(normalized) > emailMaxLength {
		return Email{}, domainerr.NewValidation("email", "email is too long (max 255 characters)")
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, domainerr.NewValidation("email", "invalid email format: "+normalized)
	}
	return Email{value: normalized}, nil
}

// String returns the normalized address.
func (e Email) String() string { return e.value }

// Equal compares by normalized value.
func (e Email) Equal(other Email) bool { return e.value == other.value }

// IsZero reports whether the value was never constructed.
func (e Email) IsZero() bool { return e.value == "" }

package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/internal/domain/valueobject"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 50
)

// User is the aggregate root for the account domain. Identity is the id:
// two instances are equal iff their ids match, regardless of other fields.
// All mutation goes through methods so the username bounds and the
// updated-at bump hold as invariants.
type User struct {
	id             uuid.UUID
	email          valueobject.Email
	hashedPassword valueobject.HashedPassword
	username       string
	isActive       bool
	isVerified     bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates a fresh user with a generated id, is_active=true and
// is_verified=false. The email must be verified before is_verified flips.
func NewUser(email valueobject.Email, hashedPassword valueobject.HashedPassword, username string) (*User, error) {
	name, err := validateUsername(username)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		id:             uuid.New(),
		email:          email,
		hashedPassword: hashedPassword,
		username:       name,
		isActive:       true,
		isVerified:     false,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Rehydrate rebuilds a user from persisted state. Used by repository
// adapters only; it re-applies the username invariant on the way in.
func Rehydrate(
	id uuid.UUID,
	email valueobject.Email,
	hashedPassword valueobject.HashedPassword,
	username string,
	isActive, isVerified bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	name, err := validateUsername(username)
	if err != nil {
		return nil, err
	}
	return &User{
		id:             id,
		email:          email,
		hashedPassword: hashedPassword,
		username:       name,
		isActive:       isActive,
		isVerified:     isVerified,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func validateUsername(username string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return "", domainerr.NewValidation("username", "username cannot be empty")
	}
	n := utf8.RuneCountInString(name)
	if n < usernameMinLength {
		return "", domainerr.NewValidation("username", "username must be at least 3 characters")
	}
	if n > usernameMaxLength {
		return "", domainerr.NewValidation("username", "username must be at most 50 characters")
	}
	return name, nil
}

func (u *User) ID() uuid.UUID { return u.id }

func (u *User) Email() valueobject.Email { return u.email }

func (u *User) HashedPassword() valueobject.HashedPassword { return u.hashedPassword }

func (u *User) Username() string { return u.username }

func (u *User) IsActive() bool { return u.isActive }

func (u *User) IsVerified() bool { return u.isVerified }

func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Equal compares by identity only. Structural comparison belongs in tests.
func (u *User) Equal(other *User) bool {
	if other == nil {
		return false
	}
	return u.id == other.id
}

// UpdateEmail replaces the email and forces re-verification.
func (u *User) UpdateEmail(newEmail valueobject.Email) {
	u.email = newEmail
	u.isVerified = false
	u.touch()
}

// UpdatePassword replaces the stored hash.
func (u *User) UpdatePassword(newHashedPassword valueobject.HashedPassword) {
	u.hashedPassword = newHashedPassword
	u.touch()
}

// UpdateUsername replaces the username, re-applying the length bounds.
func (u *User) UpdateUsername(newUsername string) error {
	name, err := validateUsername(newUsername)
	if err != nil {
		return err
	}
	u.username = name
	u.touch()
	return nil
}

// Activate enables the account.
func (u *User) Activate() {
	u.isActive = true
	u.touch()
}

// Deactivate disables the account; login then fails with UserNotActiveError.
func (u *User) Deactivate() {
	u.isActive = false
	u.touch()
}

// VerifyEmail marks the current email as verified.
func (u *User) VerifyEmail() {
	u.isVerified = true
	u.touch()
}

// touch keeps updatedAt monotonically non-decreasing.
func (u *User) touch() {
	if now := time.Now().UTC(); now.After(u.updatedAt) {
		u.updatedAt = now
	}
}

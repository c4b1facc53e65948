package domainerr

import (
	"errors"
	"fmt"
)

// invalidCredentialsMessage is shared by the "unknown email" and "wrong
// password" failure paths. The two must stay byte-identical so the response
// never reveals which factor was wrong.
const invalidCredentialsMessage = "invalid email or password"

// ValidationError reports a malformed input value (bad email shape, weak
// password, bad username length). Callers re-prompt; never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UserAlreadyExistsError reports a uniqueness conflict on email or username.
type UserAlreadyExistsError struct {
	Field string
	Value string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user with %s '%s' already exists", e.Field, e.Value)
}

// InvalidCredentialsError reports a failed login without revealing whether
// the email or the password was wrong.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return invalidCredentialsMessage
}

// UserNotActiveError reports a login attempt against a disabled account.
// Account-disabled state is not a secret, so this is distinct from
// InvalidCredentialsError.
type UserNotActiveError struct {
	Email string
}

func (e *UserNotActiveError) Error() string {
	return fmt.Sprintf("user account '%s' is not active", e.Email)
}

// UserNotFoundError reports a lookup miss for a known-shaped identifier,
// e.g. a valid token whose subject no longer exists.
type UserNotFoundError struct {
	Identifier string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found: %s", e.Identifier)
}

// Token failures. Callers collapse these into a generic "unauthenticated"
// response but keep them distinguishable for logging.
var (
	// ErrTokenFormat marks a structurally unusable token, e.g. empty input.
	ErrTokenFormat = errors.New("invalid token format")
	// ErrTokenExpired marks a well-formed token whose expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid marks any other verification failure: wrong signing
	// key, tampering, malformed encoding.
	ErrTokenInvalid = errors.New("token is invalid")
)

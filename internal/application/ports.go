package application

import (
	"time"

	"github.com/google/uuid"
)

// PasswordHasher is the credential-hashing port. Hash must salt freshly on
// every call, so hashing the same plaintext twice yields different strings.
// Verify must return false, never an error, for structurally invalid or
// foreign-format hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenClaims is the verified payload returned by TokenService.Validate.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenService is the token-issuance port. Generate returns the signed token
// together with its expiry. GetExpiration checks the signature but not the
// expiry, so it also works on already-expired tokens.
type TokenService interface {
	Generate(userID uuid.UUID, email string) (string, time.Time, error)
	Validate(token string) (TokenClaims, error)
	GetExpiration(token string) (time.Time, error)
}

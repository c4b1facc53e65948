package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/argentum-labs/argentum/internal/application"
	"github.com/argentum-labs/argentum/internal/domain/domainerr"
)

// JWTTokenService issues and verifies HMAC-signed JWTs via golang-jwt.
// Tokens carry subject=user id, email, issued-at and expires-at. Lifetime is
// fixed at construction; a lifetime of zero or less produces already-expired
// tokens, which the expiry tests rely on.
type JWTTokenService struct {
	secret       []byte
	method       jwt.SigningMethod
	lifetime     time.Duration
	validMethods []string
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTTokenService builds a token service. The secret must be non-empty
// and the algorithm must name an HMAC method (HS256, HS384, HS512).
func NewJWTTokenService(secret, algorithm string, expireMinutes int) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt: secret key cannot be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("jwt: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("jwt: unsupported signing algorithm %q", algorithm)
	}
	return &JWTTokenService{
		secret:       []byte(secret),
		method:       method,
		lifetime:     time.Duration(expireMinutes) * time.Minute,
		validMethods: []string{method.Alg()},
	}, nil
}

func (s *JWTTokenService) Generate(userID uuid.UUID, email string) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, domainerr.NewValidation("user_id", "user id cannot be empty")
	}
	if email == "" {
		return "", time.Time{}, domainerr.NewValidation("email", "email cannot be empty")
	}
	now := time.Now().UTC()
	expiresAt := now.Add(s.lifetime)
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate verifies the signature and expiry and returns the payload.
// Failures map onto the token error taxonomy: ErrTokenFormat for empty
// input, ErrTokenExpired for a lapsed expiry, ErrTokenInvalid otherwise.
func (s *JWTTokenService) Validate(token string) (application.TokenClaims, error) {
	if token == "" {
		return application.TokenClaims{}, fmt.Errorf("%w: token cannot be empty", domainerr.ErrTokenFormat)
	}
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, s.keyFunc, jwt.WithValidMethods(s.validMethods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return application.TokenClaims{}, domainerr.ErrTokenExpired
		}
		return application.TokenClaims{}, fmt.Errorf("%w: %v", domainerr.ErrTokenInvalid, err)
	}
	return application.TokenClaims{UserID: claims.Subject, Email: claims.Email}, nil
}

// GetExpiration returns the token's expiry. The signature is still checked,
// but expiry is not enforced, so it works on already-expired tokens.
func (s *JWTTokenService) GetExpiration(token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, fmt.Errorf("%w: token cannot be empty", domainerr.ErrTokenFormat)
	}
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods(s.validMethods), jwt.WithoutClaimsValidation())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domainerr.ErrTokenInvalid, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: token does not have expiration", domainerr.ErrTokenFormat)
	}
	return claims.ExpiresAt.Time, nil
}

func (s *JWTTokenService) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return s.secret, nil
}

var _ application.TokenService = (*JWTTokenService)(nil)
